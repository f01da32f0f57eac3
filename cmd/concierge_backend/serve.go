package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/adapters/notifier"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/concierge_backoffice/internal/core/services"
	"github.com/SscSPs/concierge_backoffice/internal/handlers"
	"github.com/SscSPs/concierge_backoffice/internal/metrics"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/SscSPs/concierge_backoffice/internal/platform/config"
	"github.com/SscSPs/concierge_backoffice/internal/repositories/database/firestore"
	"github.com/SscSPs/concierge_backoffice/internal/repositories/database/pgsql"
	"github.com/SscSPs/concierge_backoffice/internal/repositories/records"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/SscSPs/concierge_backoffice/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(logger *slog.Logger) *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(cmd.Context(), logger, cfg, skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start (postgres store only)")
	return cmd
}

func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config, skipMigrations bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, logger, cfg, skipMigrations)
	if err != nil {
		return err
	}
	defer closeStore()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	serviceContainer := services.NewServiceContainer(cfg, records.NewRepositoryProvider(store), newNotifiers(logger, cfg),
		services.WithMetrics(recorder))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.MetricsMiddleware(recorder),
		middleware.PosthogMiddleware(posthogClient),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, registry); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.DocumentStore))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed to run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured document store and returns its cleanup function.
func openStore(ctx context.Context, logger *slog.Logger, cfg *config.Config, skipMigrations bool) (portsrepo.DocumentStore, func(), error) {
	switch cfg.DocumentStore {
	case config.StoreFirestore:
		client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Firestore document store", slog.String("project_id", cfg.FirestoreProjectID))
		return firestore.NewRecordStore(client), func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing Firestore client", slog.String("error", err.Error()))
			}
		}, nil
	default:
		if !skipMigrations {
			if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp); err != nil {
				return nil, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, logger, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRecordStore(pool), func() { database.ClosePgxPool(logger, pool) }, nil
	}
}

// newNotifiers builds the outbound mailers. Unconfigured mail leaves both nil so
// services skip notifications instead of failing every send.
func newNotifiers(logger *slog.Logger, cfg *config.Config) services.Notifiers {
	if cfg.MailServiceID == "" || cfg.MailTemplateID == "" {
		logger.Warn("Outbound mail is not configured; notifications are disabled")
		return services.Notifiers{}
	}
	mail := notifier.NewEmailJS(notifier.Config{
		Endpoint:   cfg.MailEndpoint,
		ServiceID:  cfg.MailServiceID,
		TemplateID: cfg.MailTemplateID,
		PublicKey:  cfg.MailPublicKey,
		PrivateKey: cfg.MailPrivateKey,
		FromName:   cfg.OwnerName,
	}, nil)
	return services.Notifiers{
		Alerts:  mail,
		Replies: mail.WithTemplate(cfg.MailReplyTemplateID),
	}
}
