// Package handler implements the Fitbit subscription webhook endpoint.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/isometry/fitbit-webhook-app/internal/helpers"
	"github.com/isometry/fitbit-webhook-app/internal/models"
	"github.com/isometry/fitbit-webhook-app/internal/verification"
)

// Option is a functional option used to configure a Handler.
type Option func(*Handler)

// Handler answers the Fitbit subscriber verification handshake and acknowledges data-sync notifications.
// It holds no mutable state and is safe for concurrent use.
type Handler struct {
	logger *slog.Logger
	secret *verification.Secret
}

// New creates a Handler. Without WithVerificationSecret every verification request fails.
func New(opts ...Option) *Handler {
	_inst := &Handler{}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// Process maps a request onto its response. The response is always fully defined; the returned error only
// describes why a verification request was rejected and must not be treated as a transport failure.
func (h *Handler) Process(req models.Request) (models.Response, error) {
	logger := h.logger.With(slog.String("method", req.Method))

	if req.Method != http.MethodGet {
		logger.Info("notification received", slog.String("body", req.Body), slog.Any("headers", req.Headers))
		return models.Response{StatusCode: http.StatusNoContent}, nil
	}

	logger.Info("verification requested...")
	if err := h.secret.Verify(req.QueryParameters); err != nil {
		logger.Warn("verification failed", slog.Any("error", err), slog.Any("query", req.QueryParameters))
		return models.Response{StatusCode: http.StatusNotFound}, err
	}
	logger.Info("verification successful")
	return models.Response{StatusCode: http.StatusNoContent}, nil
}
