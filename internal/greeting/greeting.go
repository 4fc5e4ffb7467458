// Package greeting provides a stand-alone hello-world function with no configuration.
package greeting

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/isometry/fitbit-webhook-app/internal/models"
)

// Message is the fixed greeting returned by Handle.
const Message = "Hello from fitbit-webhook-app!"

// Handle logs the raw invocation event and returns the greeting.
func Handle(_ context.Context, logger *slog.Logger, event json.RawMessage) models.Response {
	logger.Info("greeting requested", slog.String("event", string(event)))
	body, _ := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: Message})
	return models.Response{
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
		StatusCode: http.StatusNoContent,
	}
}
