package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/isometry/fitbit-webhook-app/internal/config"
	"github.com/isometry/fitbit-webhook-app/internal/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda function",
	}
	cmd.AddCommand(
		cmdLambdaHTTP(),
		cmdLambdaGreeting(),
	)
	bindEnvMap(cmd, lambdaEnvMapString)
	return cmd
}

// cmdLambdaHTTP is the command for running the webhook behind API Gateway or a function URL.
func cmdLambdaHTTP() *cobra.Command {
	return &cobra.Command{
		Use: "http",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.Global.Mode = config.ModeLambdaHTTP
			hdl, err := setup(cmd)
			if err != nil {
				return errors.Wrap(err, "failed to setup lambda")
			}

			logger = logger.With("mode", config.Global.Mode)
			logger.Debug("creating runtime...")
			rt := runtime.NewRuntime(hdl,
				runtime.WithPayloadType(config.Lambda.PayloadType),
				runtime.WithLogger(logger.With("component", "runtime")))

			logger.Info("lambda starting...")
			lambda.StartWithOptions(rt.Lambda,
				lambda.WithContext(cmd.Context()))
			return nil
		},
	}
}

// cmdLambdaGreeting is the command for running the greeting function.
func cmdLambdaGreeting() *cobra.Command {
	return &cobra.Command{
		Use: "greeting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.Global.Mode = config.ModeLambdaGreeting
			logger = logger.With("mode", config.Global.Mode)
			rt := runtime.NewGreetingRuntime(
				runtime.WithPayloadType(config.Lambda.PayloadType),
				runtime.WithLogger(logger.With("component", "greeting")))

			logger.Info("lambda starting...")
			lambda.StartWithOptions(rt.Lambda,
				lambda.WithContext(cmd.Context()))
			return nil
		},
	}
}
