package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// MessageKey is the body key for status messages.
const MessageKey = "mensagem"

// JSON writes payload as the whole response body.
func JSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.WarnContext(r.Context(), "response encode failed",
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	}
}

// Message writes {"mensagem": message}.
func Message(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, map[string]any{MessageKey: message})
}

// Error writes message like Message and logs code with the request id so
// responses can be tied back to a log line.
func Error(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(r.Context(), level, "request rejected",
		"status", status,
		"code", code,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
	Message(w, r, status, message)
}
