package greeting_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/isometry/fitbit-webhook-app/internal/greeting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	testCases := []struct {
		Name  string
		Event json.RawMessage
	}{
		{Name: "empty_event", Event: nil},
		{Name: "object_event", Event: json.RawMessage(`{"key":"value"}`)},
		{Name: "scalar_event", Event: json.RawMessage(`"ping"`)},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			resp := greeting.Handle(context.Background(), logger, tc.Event)

			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Equal(t, greeting.Message, body.Message)
			assert.Contains(t, buf.String(), "greeting requested")
		})
	}
}
