package handler

import (
	"log/slog"

	"github.com/isometry/fitbit-webhook-app/internal/verification"
)

// WithLogger sets the logger instance for the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithVerificationSecret configures the subscriber verification code the handler compares incoming
// verification requests against. An empty code leaves verification unconfigured.
func WithVerificationSecret(code string) Option {
	return func(h *Handler) {
		h.secret = verification.NewSecret(code)
	}
}
