package fitbit

import "log/slog"

// WithLogger sets a custom logger for the Controller instance.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithVerificationSource selects where the verification code is read from ("env" or "ssm").
func WithVerificationSource(source string) Option {
	return func(c *Controller) {
		c.source = source
	}
}

// WithVerificationCode sets the code used by the "env" source.
func WithVerificationCode(code string) Option {
	return func(c *Controller) {
		c.code = code
	}
}

// WithSSMKey sets the SSM parameter name used by the "ssm" source.
func WithSSMKey(key string) Option {
	return func(c *Controller) {
		c.ssmKey = key
	}
}

// WithSecretGetter sets the client used by the "ssm" source.
func WithSecretGetter(getter SecretGetter) Option {
	return func(c *Controller) {
		c.secretGetter = getter
	}
}
