package services

import (
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/platform/config"
)

// Notifiers groups the outbound mailers. Alerts carries owner alerts and document
// e-mails; Replies uses the template dedicated to contact replies.
type Notifiers struct {
	Alerts  portssvc.Notifier
	Replies portssvc.Notifier
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifiers Notifiers, opts ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first: documents read their defaults from it.
	container.Settings = NewSettingsService(repos.SettingsRepo, opts...)

	container.Client = NewClientService(repos.ClientRepo, opts...)
	container.Mission = NewMissionService(repos.MissionRepo, repos.ClientRepo, cfg.DefaultTimezone, opts...)
	container.Catalog = NewCatalogService(repos.CategoryRepo, repos.PrestationRepo, repos.ProductRepo, opts...)
	container.Document = NewDocumentService(repos, container.Settings, notifiers.Alerts, opts...)
	container.Contact = NewContactService(
		repos.ContactRepo,
		notifiers.Alerts,
		notifiers.Replies,
		Owner{Name: cfg.OwnerName, Email: cfg.OwnerEmail},
		opts...,
	)

	container.Token = NewTokenService(cfg, opts...)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
