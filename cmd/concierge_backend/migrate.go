package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/concierge_backoffice/internal/platform/config"
	"github.com/SscSPs/concierge_backoffice/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply (up) or roll back one (down) PostgreSQL migration",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.DocumentStore != config.StorePostgres {
				return fmt.Errorf("migrations only apply to the %s store, DOCUMENT_STORE is %s", config.StorePostgres, cfg.DocumentStore)
			}
			direction := database.MigrateUp
			if len(args) == 1 {
				direction = database.MigrationDirection(args[0])
			}
			return database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, direction)
		},
	}
}
