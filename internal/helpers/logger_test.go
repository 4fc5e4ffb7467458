package helpers_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/isometry/fitbit-webhook-app/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		Name      string
		Verbosity int
		Enabled   []slog.Level
		Disabled  []slog.Level
	}{
		{
			Name:      "default_warn",
			Verbosity: 0,
			Enabled:   []slog.Level{slog.LevelWarn, slog.LevelError},
			Disabled:  []slog.Level{slog.LevelInfo, slog.LevelDebug},
		},
		{
			Name:      "info",
			Verbosity: 1,
			Enabled:   []slog.Level{slog.LevelInfo, slog.LevelWarn},
			Disabled:  []slog.Level{slog.LevelDebug},
		},
		{
			Name:      "debug",
			Verbosity: 2,
			Enabled:   []slog.Level{slog.LevelDebug, slog.LevelInfo},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			logger := helpers.NewLogger(&bytes.Buffer{}, tc.Verbosity, false)
			for _, l := range tc.Enabled {
				assert.True(t, logger.Enabled(context.Background(), l), "level %s", l)
			}
			for _, l := range tc.Disabled {
				assert.False(t, logger.Enabled(context.Background(), l), "level %s", l)
			}
		})
	}
}
