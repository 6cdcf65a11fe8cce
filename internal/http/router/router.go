package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sandeepkv93/promo-catalog-service/internal/health"
	"github.com/sandeepkv93/promo-catalog-service/internal/http/handler"
	"github.com/sandeepkv93/promo-catalog-service/internal/http/middleware"
	"github.com/sandeepkv93/promo-catalog-service/internal/http/response"
)

const maxRequestBodyBytes = 1 << 20

type Dependencies struct {
	ProductHandler    *handler.ProductHandler
	PromotionHandler  *handler.PromotionHandler
	CORSOrigins       []string
	APIRateLimitRPM   int
	GlobalRateLimiter GlobalRateLimiterFunc
	Readiness         *health.ProbeRunner
	EnableOTelHTTP    bool
}

type GlobalRateLimiterFunc func(http.Handler) http.Handler

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(maxRequestBodyBytes))
	if dep.GlobalRateLimiter != nil {
		r.Use(dep.GlobalRateLimiter)
	} else if dep.APIRateLimitRPM > 0 {
		r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute).Bypass("/health/").Middleware())
	}

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ready, results := dep.Readiness.Ready(r.Context())
		if results == nil {
			results = []health.CheckResult{}
		}
		status, label := http.StatusOK, "ready"
		if !ready {
			status, label = http.StatusServiceUnavailable, "unready"
		}
		response.JSON(w, r, status, map[string]any{"status": label, "checks": results})
	})

	products := dep.ProductHandler
	r.Get("/produtos", products.List)
	r.Post("/produtos/busca-por-nome", products.SearchByName)
	r.Post("/cadastrar-produto", products.Create)
	r.Delete("/remover-produto", products.Delete)

	promotions := dep.PromotionHandler
	r.Get("/promocoes", promotions.List)
	r.Post("/promocoes/busca-por-nome", promotions.SearchByName)
	r.Post("/cadastrar-promocao", promotions.Create)
	r.Delete("/remover-promocao", promotions.Delete)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Rota não encontrada")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Método não permitido")
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
