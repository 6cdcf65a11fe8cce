package observability

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBuildAuditEventIncludesRequiredFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/cadastrar-produto", nil)
	req.Header.Set("X-Request-Id", "req-test-1")
	req.RemoteAddr = "127.0.0.1:12345"

	ev := BuildAuditEvent(req, AuditInput{
		EventName:  "product.create",
		TargetType: "product",
		TargetID:   "7",
		Action:     "create",
		Outcome:    "success",
		Reason:     "product_created",
	})

	if ev.EventVersion != 1 {
		t.Fatalf("expected event version 1, got %d", ev.EventVersion)
	}
	if ev.ActorIP != "127.0.0.1" {
		t.Fatalf("unexpected actor ip: %s", ev.ActorIP)
	}
	if ev.RequestID != "req-test-1" {
		t.Fatalf("unexpected request id: %s", ev.RequestID)
	}
	if _, err := time.Parse(time.RFC3339, ev.TS); err != nil {
		t.Fatalf("expected RFC3339 ts, got %q err=%v", ev.TS, err)
	}
	if err := ev.Validate(); err != nil {
		t.Fatalf("expected valid event, got %v", err)
	}
}

func TestAuditEventValidateRejectsMissingEventName(t *testing.T) {
	ev := AuditEvent{
		EventVersion: 1,
		TargetType:   "promotion",
		TargetID:     "1",
		Action:       "delete",
		Outcome:      "success",
		TS:           time.Now().UTC().Format(time.RFC3339),
	}
	if err := ev.Validate(); err == nil {
		t.Fatal("expected validation error for missing event_name")
	}
}

type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestEmitAuditLevels(t *testing.T) {
	orig := slog.Default()
	rec := &recordingHandler{}
	slog.SetDefault(slog.New(rec))
	t.Cleanup(func() { slog.SetDefault(orig) })

	req := httptest.NewRequest("DELETE", "/remover-promocao", nil)
	EmitAudit(req, AuditInput{EventName: "promotion.delete", TargetType: "promotion", TargetID: "3", Action: "delete", Outcome: "success"})
	EmitAudit(req, AuditInput{TargetType: "promotion"})

	if len(rec.records) != 2 {
		t.Fatalf("expected 2 audit records, got %d", len(rec.records))
	}
	if rec.records[0].Level != slog.LevelInfo || rec.records[0].Message != "audit" {
		t.Fatalf("unexpected first record: level=%v msg=%q", rec.records[0].Level, rec.records[0].Message)
	}
	if rec.records[1].Level != slog.LevelWarn || rec.records[1].Message != "audit.invalid" {
		t.Fatalf("unexpected second record: level=%v msg=%q", rec.records[1].Level, rec.records[1].Message)
	}
}
