package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sandeepkv93/promo-catalog-service/internal/http/presenter"
	"github.com/sandeepkv93/promo-catalog-service/internal/http/response"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
	"github.com/sandeepkv93/promo-catalog-service/internal/repository"
	"github.com/sandeepkv93/promo-catalog-service/internal/service"
)

const (
	msgProductNotFound       = "Produto não encontrado"
	msgProductNotFoundStored = "Produto não encontrado na base"
	msgProductRemoved        = "Produto removido"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "product.list", err, msgProductNotFound)
		return
	}
	if len(items) == 0 {
		response.JSON(w, r, http.StatusNotFound, map[string]any{"produtos": []any{}})
		return
	}
	response.JSON(w, r, http.StatusOK, presenter.ProductListings(items))
}

func (h *ProductHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"nome"`
	}
	if err := decodeBody(r, &body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msgInvalidPayload)
		return
	}

	name := body.Name
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	product, err := h.svc.FindByName(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, "product.find_by_name", err, msgProductNotFound)
		return
	}
	response.JSON(w, r, http.StatusOK, presenter.ProductSearch(*product))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        *string     `json:"nome"`
		Price       *float64    `json:"valor"`
		Category    *string     `json:"categoria"`
		PromotionID *flexibleID `json:"promocao_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msgInvalidPayload)
		return
	}

	created, err := h.svc.Create(r.Context(), service.CreateProductInput{
		Name:        body.Name,
		Price:       body.Price,
		Category:    body.Category,
		PromotionID: body.PromotionID.ptr(),
	})
	if err != nil {
		writeServiceError(w, r, "product.create", err, msgProductNotFound)
		return
	}

	observability.EmitAudit(r, observability.AuditInput{
		EventName:  "product.create",
		TargetType: "product",
		TargetID:   formatID(created.ID),
		Action:     "create",
		Outcome:    "success",
		Reason:     "product_created",
	}, "name", created.Name)
	response.JSON(w, r, http.StatusCreated, presenter.Product(*created))
}

// Delete replies under the "message" key instead of "mensagem".
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID flexibleID `json:"produto_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		response.JSON(w, r, http.StatusBadRequest, map[string]any{"message": msgInvalidPayload})
		return
	}
	if !body.ProductID.Set || (body.ProductID.Value == 0 && !body.ProductID.Quoted) {
		response.JSON(w, r, http.StatusBadRequest, map[string]any{"message": service.MsgProductIDAbsent})
		return
	}
	// "0" counts as a supplied id; no row ever has it.
	if body.ProductID.Value == 0 {
		response.JSON(w, r, http.StatusNotFound, map[string]any{"message": msgProductNotFoundStored})
		return
	}

	id := body.ProductID.Value
	if err := h.svc.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			response.JSON(w, r, http.StatusNotFound, map[string]any{"message": msgProductNotFoundStored})
			return
		}
		writeServiceError(w, r, "product.delete", err, msgProductNotFoundStored)
		return
	}

	observability.EmitAudit(r, observability.AuditInput{
		EventName:  "product.delete",
		TargetType: "product",
		TargetID:   formatID(id),
		Action:     "delete",
		Outcome:    "success",
		Reason:     "product_deleted",
	})
	response.JSON(w, r, http.StatusOK, map[string]any{"message": msgProductRemoved, "id": id})
}
