// Package cmd provides the entrypoint for the fitbit-webhook-app cli.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/isometry/fitbit-webhook-app/internal/config"
	"github.com/isometry/fitbit-webhook-app/internal/helpers"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFilePath string
	logger         *slog.Logger
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for the fitbit-webhook-app.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fitbit-webhook-app",
		Short:        "Fitbit subscription webhook receiver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfiguration(cmd); err != nil {
				return err
			}
			config.Global.Mode = strings.TrimSpace(config.Global.Mode)
			logger = helpers.NewLogger(os.Stdout, config.Global.Logging.Verbosity, config.Global.Logging.CallerTrace).
				With("mode", config.Global.Mode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch config.Global.Mode {
			case config.ModeService:
				return cmdService().RunE(cmd, args)
			case config.ModeLambdaHTTP:
				return cmdLambdaHTTP().RunE(cmd, args)
			case config.ModeLambdaGreeting:
				return cmdLambdaGreeting().RunE(cmd, args)
			default:
				return fmt.Errorf("invalid mode: %s", config.Global.Mode)
			}
		},
	}

	// Root command flags
	configFilePath = os.Getenv("CONFIG_FILE")
	if configFilePath == "" {
		configFilePath = "config.yaml"
	}
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", configFilePath, "[CONFIG_FILE] path to the configuration file")

	// Defaults shown in the flag usage; the configuration file is loaded once flags are parsed
	if err := config.SetDefaults(); err != nil {
		panic(err)
	}

	// Dynamic flags
	setupDynamicFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		cmdLambda(),
		cmdService(),
	)

	return cmd
}

func setupDynamicFlags(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
}

// loadConfiguration reads the configuration file and applies defaults beneath the values already provided through
// flags or environment variables, which keep precedence over the file.
func loadConfiguration(cmd *cobra.Command) error {
	overrides := make(map[string]string)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		if f.Changed || viper.IsSet(f.Name) {
			overrides[f.Name] = f.Value.String()
		}
	})

	if err := errors.Join(
		config.LoadFromFile(configFilePath),
		config.SetDefaults(),
	); err != nil {
		return err
	}

	for name, value := range overrides {
		if err := cmd.Flags().Set(name, value); err != nil {
			return fmt.Errorf("failed to restore flag %s: %w", name, err)
		}
	}
	return nil
}
