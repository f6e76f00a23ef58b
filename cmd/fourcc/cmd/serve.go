/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/fourcc/pkg/api"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the fourcc REST API server. Flags override the config file.

Examples:
  fourcc serve
  fourcc serve --port 9000 --bind 0.0.0.0 --api-key mysecretkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			if cmd.Flags().Changed("port") {
				cfg.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				cfg.Bind, _ = cmd.Flags().GetString("bind")
			}
			if cmd.Flags().Changed("api-key") {
				cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if container == nil {
				return fmt.Errorf("dependency container not initialized")
			}

			serverConfig := api.ServerConfig{
				Port:        cfg.Port,
				Bind:        cfg.Bind,
				APIKey:      cfg.Security.APIKey,
				LogRequests: cfg.Logging.Level == "debug" || cfg.Logging.Level == "info",
			}
			if serverConfig.APIKey == "" {
				cmd.PrintErrf("Warning: no API key configured, /api/v1 is unauthenticated\n")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			starter := container.GetServerFactory().CreateServerStarter()
			if err := starter.StartServer(ctx, serverConfig); err != nil {
				return fmt.Errorf("error starting server: %w", err)
			}
			return nil
		},
	}

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key required in X-API-Key (empty disables the check)")

	return serveCmd
}
