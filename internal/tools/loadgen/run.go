package loadgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
)

type Config struct {
	BaseURL     string
	Profile     string
	Duration    time.Duration
	RPS         int
	Concurrency int
	Seed        int64
	Client      *http.Client
}

type Result struct {
	TotalRequests int64
	Failures      int64
	Status2xx     int64
	Status4xx     int64
	Status5xx     int64
}

type request struct {
	method string
	path   string
	body   string
}

func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 10 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 15
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	requests := requestsForProfile(cfg.Profile)
	if len(requests) == 0 {
		return Result{}, fmt.Errorf("unknown profile: %s", cfg.Profile)
	}
	profile := strings.ToLower(cfg.Profile)
	if profile == "" {
		profile = "mixed"
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	var total, failures, s2xx, s4xx, s5xx int64
	jobs := make(chan request, cfg.Concurrency*2)
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < cfg.Concurrency; i++ {
		g.Go(func() error {
			for rq := range jobs {
				var body io.Reader
				if rq.body != "" {
					body = bytes.NewBufferString(rq.body)
				}
				req, err := http.NewRequestWithContext(gctx, rq.method, baseURL+rq.path, body)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					continue
				}
				if rq.body != "" {
					req.Header.Set("Content-Type", "application/json")
				}
				resp, err := client.Do(req)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					observability.RecordLoadgenRequest(gctx, "transport_error", profile)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				atomic.AddInt64(&total, 1)
				class := statusClass(resp.StatusCode)
				switch class {
				case "2xx":
					atomic.AddInt64(&s2xx, 1)
				case "4xx":
					atomic.AddInt64(&s4xx, 1)
				case "5xx":
					atomic.AddInt64(&s5xx, 1)
				}
				observability.RecordLoadgenRequest(gctx, class, profile)
			}
			return nil
		})
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ticker := time.NewTicker(time.Second / time.Duration(cfg.RPS))
	defer ticker.Stop()
dispatch:
	for {
		select {
		case <-ctx.Done():
			break dispatch
		case <-ticker.C:
			select {
			case jobs <- requests[rng.Intn(len(requests))]:
			case <-ctx.Done():
				break dispatch
			}
		}
	}
	close(jobs)
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{
		TotalRequests: atomic.LoadInt64(&total),
		Failures:      atomic.LoadInt64(&failures),
		Status2xx:     atomic.LoadInt64(&s2xx),
		Status4xx:     atomic.LoadInt64(&s4xx),
		Status5xx:     atomic.LoadInt64(&s5xx),
	}, nil
}

func statusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func requestsForProfile(profile string) []request {
	read := []request{
		{method: http.MethodGet, path: "/promocoes"},
		{method: http.MethodGet, path: "/produtos"},
		{method: http.MethodPost, path: "/produtos/busca-por-nome", body: `{"nome":"Mouse"}`},
		{method: http.MethodPost, path: "/promocoes/busca-por-nome", body: `{"nome":"Black Friday"}`},
		{method: http.MethodGet, path: "/health/ready"},
	}
	writes := []request{
		{method: http.MethodPost, path: "/cadastrar-promocao", body: `{"nome":"Carga","divulgador":"loadgen","url":"https://example.com/carga","produtos":[{"nome":"Item"}]}`},
	}
	errorsOnly := []request{
		{method: http.MethodPost, path: "/produtos/busca-por-nome", body: `{"nome":"Inexistente"}`},
		{method: http.MethodPost, path: "/cadastrar-produto", body: `{}`},
		{method: http.MethodPost, path: "/cadastrar-produto", body: `{"nome":"X","valor":-1,"categoria":"Y","promocao_id":1}`},
		{method: http.MethodDelete, path: "/remover-produto", body: `{"produto_id":0}`},
		{method: http.MethodPost, path: "/cadastrar-promocao", body: `{"nome":"Sem url"}`},
		{method: http.MethodGet, path: "/rota-inexistente"},
	}
	switch strings.ToLower(profile) {
	case "read":
		return read
	case "", "mixed":
		out := append([]request{}, read...)
		out = append(out, writes...)
		return append(out, errorsOnly[0], errorsOnly[1])
	case "error-heavy":
		return append(append([]request{}, errorsOnly...), read[0])
	default:
		return nil
	}
}
