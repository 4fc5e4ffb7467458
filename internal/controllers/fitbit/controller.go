// Package fitbit provides a Controller resolving the Fitbit subscriber verification code.
package fitbit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/isometry/fitbit-webhook-app/internal/config"
	"github.com/isometry/fitbit-webhook-app/internal/helpers"
	"github.com/pkg/errors"
)

// SecretGetter fetches a named secret, e.g. an SSM parameter.
type SecretGetter interface {
	GetSecret(key string, encrypted bool) (string, error)
}

// Option is a functional option used to configure a Controller instance.
type Option func(*Controller)

// Controller resolves the subscriber verification code from the configured source.
type Controller struct {
	logger       *slog.Logger
	source       string
	code         string
	ssmKey       string
	secretGetter SecretGetter
}

// NewController initializes a new Controller with the provided options, setting defaults where necessary.
func NewController(opts ...Option) *Controller {
	_inst := &Controller{source: config.VerificationSourceEnv}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// RetrieveVerificationCode returns the verification code from flags/environment or SSM. An empty code is not an
// error: the handler then rejects every verification request.
func (c *Controller) RetrieveVerificationCode() (string, error) {
	source := strings.TrimSpace(strings.ToLower(c.source))
	logger := c.logger.With(slog.String("source", source))

	switch source {
	case config.VerificationSourceEnv:
		logger.Debug("using verification code from the environment...")
		return c.code, nil
	case config.VerificationSourceSSM:
		if c.secretGetter == nil {
			return "", errors.New("no SSM client configured")
		}
		logger.Debug("retrieving verification code from SSM...", slog.String("key", c.ssmKey))
		code, err := c.secretGetter.GetSecret(c.ssmKey, true)
		if err != nil {
			return "", errors.Wrap(err, "failed to fetch verification code from SSM")
		}
		return code, nil
	default:
		return "", fmt.Errorf("unsupported verification source: %s", c.source)
	}
}
