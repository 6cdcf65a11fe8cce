package handler

import (
	"net/http"

	"github.com/sandeepkv93/promo-catalog-service/internal/http/presenter"
	"github.com/sandeepkv93/promo-catalog-service/internal/http/response"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
	"github.com/sandeepkv93/promo-catalog-service/internal/service"
)

const (
	msgPromotionNotFound = "Promoção não encontrada"
	msgPromotionCreated  = "Promoção cadastrada com sucesso"
	msgPromotionDeleted  = "Promoção excluída com sucesso"
)

type PromotionHandler struct {
	svc service.PromotionService
}

func NewPromotionHandler(svc service.PromotionService) *PromotionHandler {
	return &PromotionHandler{svc: svc}
}

func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "promotion.list", err, msgPromotionNotFound)
		return
	}
	if len(items) == 0 {
		response.JSON(w, r, http.StatusNotFound, map[string]any{"promocoes": []any{}})
		return
	}
	response.JSON(w, r, http.StatusOK, presenter.Promotions(items))
}

func (h *PromotionHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"nome"`
	}
	if err := decodeBody(r, &body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msgInvalidPayload)
		return
	}

	promotion, err := h.svc.FindByName(r.Context(), body.Name)
	if err != nil {
		writeServiceError(w, r, "promotion.find_by_name", err, msgPromotionNotFound)
		return
	}
	response.JSON(w, r, http.StatusOK, presenter.Promotion(*promotion))
}

func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name      *string `json:"nome"`
		Publisher *string `json:"divulgador"`
		URL       *string `json:"url"`
		Products  []struct {
			Name *string `json:"nome"`
		} `json:"produtos"`
	}
	if err := decodeBody(r, &body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msgInvalidPayload)
		return
	}

	input := service.CreatePromotionInput{
		Name:      body.Name,
		Publisher: body.Publisher,
		URL:       body.URL,
		Products:  make([]service.NestedProductInput, 0, len(body.Products)),
	}
	for _, p := range body.Products {
		input.Products = append(input.Products, service.NestedProductInput{Name: p.Name})
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "promotion.create", err, msgPromotionNotFound)
		return
	}

	observability.EmitAudit(r, observability.AuditInput{
		EventName:  "promotion.create",
		TargetType: "promotion",
		TargetID:   formatID(created.ID),
		Action:     "create",
		Outcome:    "success",
		Reason:     "promotion_created",
	}, "name", created.Name, "products", len(created.Products))
	response.JSON(w, r, http.StatusCreated, map[string]any{
		response.MessageKey: msgPromotionCreated,
		"pk_promocao":       created.ID,
	})
}

func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID flexibleID `json:"id"`
	}
	if err := decodeBody(r, &body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msgInvalidPayload)
		return
	}
	if !body.ID.Set || body.ID.Value == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", service.MsgPromotionIDAbsent)
		return
	}

	id := body.ID.Value
	if err := h.svc.DeleteByID(r.Context(), id); err != nil {
		writeServiceError(w, r, "promotion.delete", err, msgPromotionNotFound)
		return
	}

	observability.EmitAudit(r, observability.AuditInput{
		EventName:  "promotion.delete",
		TargetType: "promotion",
		TargetID:   formatID(id),
		Action:     "delete",
		Outcome:    "success",
		Reason:     "promotion_deleted",
	})
	response.Message(w, r, http.StatusOK, msgPromotionDeleted)
}
