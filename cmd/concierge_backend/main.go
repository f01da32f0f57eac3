package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// @title Concierge Back Office API
// @version 1.0
// @description Clients, missions, catalog, quotes and invoices of the concierge business.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "concierge_backend",
		Short:         "Back office API of the concierge business",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := newServeCmd(logger)
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, newMigrateCmd(logger), newHashPasswordCmd())
	return root
}
