package cmd

import (
	"net"
	"net/http"

	"github.com/isometry/fitbit-webhook-app/internal/config"
	"github.com/isometry/fitbit-webhook-app/internal/runtime"
	"github.com/spf13/cobra"
)

func cmdService() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Aliases: []string{"s", "serve", "standalone", "server"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.Global.Mode = config.ModeService
			logger = logger.With("mode", config.Global.Mode)
			logger.Info("spawning...")

			hdl, err := setup(cmd)
			if err != nil {
				return err
			}

			logger.Debug("creating runtime...")
			rt := runtime.NewRuntime(hdl,
				runtime.WithLogger(logger.With("component", "runtime")))

			logger.Debug("creating HTTP server...")
			h := http.NewServeMux()
			h.Handle(config.Service.Path, rt)

			s := &http.Server{
				Handler:      h,
				Addr:         net.JoinHostPort(config.Service.Addr, config.Service.Port),
				WriteTimeout: config.Service.Timeout,
				ReadTimeout:  config.Service.Timeout,
				IdleTimeout:  config.Service.Timeout,
			}

			logger.Info("serving...", "address", s.Addr, "path", config.Service.Path, "timeout", config.Service.Timeout.String())
			return s.ListenAndServe()
		},
	}

	bindEnvMap(cmd, svcEnvMapString)
	bindEnvMap(cmd, svcEnvMapDuration)
	return cmd
}
