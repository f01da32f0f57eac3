package handlers

import (
	"fmt"

	"github.com/SscSPs/concierge_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/SscSPs/concierge_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	gatherer prometheus.Gatherer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth)
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if err := setupPublicRoutes(r, cfg, services); err != nil {
		return err
	}

	// Everything else under /api/v1 requires an admin token
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupPublicRoutes registers sign-in and the contact form, each behind its own limiter.
func setupPublicRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	loginLimiter, err := middleware.NewRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	contactLimiter, err := middleware.NewRateLimiter(cfg.ContactRateLimit)
	if err != nil {
		return fmt.Errorf("contact rate limit: %w", err)
	}

	public := r.Group("/api/v1")
	auth := newAuthHandler(services.Token, services.GoogleOAuth, cfg.IsProduction)
	registerAuthRoutes(public, auth, middleware.RateLimit(loginLimiter))
	registerPublicContactRoutes(public, services.Contact, middleware.RateLimit(contactLimiter))
	return nil
}

// setupAPIV1Routes configures the admin group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerClientRoutes(v1, services.Client)
	registerMissionRoutes(v1, services.Mission)
	registerCatalogRoutes(v1, services.Catalog)
	registerDocumentRoutes(v1, services.Document)
	registerSettingsRoutes(v1, services.Settings)
	registerContactRoutes(v1, services.Contact)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
