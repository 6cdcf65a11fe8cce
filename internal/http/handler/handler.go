package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sandeepkv93/promo-catalog-service/internal/http/response"
	"github.com/sandeepkv93/promo-catalog-service/internal/repository"
	"github.com/sandeepkv93/promo-catalog-service/internal/service"
)

const (
	msgInvalidPayload = "Requisição inválida"
	msgInternal       = "erro interno"
)

// decodeBody decodes a JSON object into dst. An empty body decodes as an
// empty object so that missing fields are reported by validation.
func decodeBody(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// flexibleID accepts an unsigned id sent either as a JSON number or as a
// numeric string. null and "" leave it unset.
type flexibleID struct {
	Value  uint
	Set    bool
	Quoted bool
}

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var quoted string
		if err := json.Unmarshal(b, &quoted); err != nil {
			return err
		}
		s = strings.TrimSpace(quoted)
		if s == "" {
			return nil
		}
		f.Quoted = true
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	f.Value = uint(n)
	f.Set = true
	return nil
}

func (f *flexibleID) ptr() *uint {
	if f == nil || !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// writeServiceError maps service and repository errors to status codes.
// notFound is the message used for a 404.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error, notFound string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", ve.Message)
	case errors.Is(err, repository.ErrProductNotFound), errors.Is(err, repository.ErrPromotionNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", notFound)
	case errors.Is(err, repository.ErrPromotionReferenceMissing):
		response.Error(w, r, http.StatusConflict, "CONFLICT", "Promoção informada não existe")
	default:
		slog.ErrorContext(r.Context(), "catalog operation failed",
			"operation", op,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", msgInternal)
	}
}
