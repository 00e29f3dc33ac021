package logs

import (
	"context"
	"log/slog"
)

type Phase string

type phaseKey struct{}

// PhaseKey is the context key holding the current compiler Phase.
var PhaseKey phaseKey

// WithPhase returns a context whose log records carry phase.
func WithPhase(ctx context.Context, phase Phase) context.Context {
	return context.WithValue(ctx, PhaseKey, phase)
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(PhaseKey); v != nil {
		record.Add("phase", v.(Phase))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}
