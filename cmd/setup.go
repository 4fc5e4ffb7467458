package cmd

import (
	"strings"

	"github.com/isometry/fitbit-webhook-app/internal/config"
	"github.com/isometry/fitbit-webhook-app/internal/controllers/aws"
	"github.com/isometry/fitbit-webhook-app/internal/controllers/fitbit"
	"github.com/isometry/fitbit-webhook-app/internal/handler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// setup resolves the verification code once and builds the webhook handler around it.
func setup(cmd *cobra.Command) (*handler.Handler, error) {
	opts := []fitbit.Option{
		fitbit.WithLogger(logger.With("component", "fitbit-controller")),
		fitbit.WithVerificationSource(config.Fitbit.VerificationSource),
		fitbit.WithVerificationCode(config.Fitbit.VerificationCode),
		fitbit.WithSSMKey(config.Fitbit.SSMKey),
	}
	if strings.EqualFold(strings.TrimSpace(config.Fitbit.VerificationSource), config.VerificationSourceSSM) {
		logger.Debug("creating AWS controller...")
		awsCtl, err := aws.NewController(
			aws.WithLogger(logger.With("component", "aws-controller")),
			aws.WithContext(cmd.Context()))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create AWS controller")
		}
		opts = append(opts, fitbit.WithSecretGetter(awsCtl))
	}

	code, err := fitbit.NewController(opts...).RetrieveVerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve verification code")
	}
	if code == "" {
		logger.Warn("verification code is not configured; every verification request will be rejected")
	}

	logger.Debug("creating webhook handler...")
	return handler.New(
		handler.WithVerificationSecret(code),
		handler.WithLogger(logger.With("component", "webhook-handler"))), nil
}
