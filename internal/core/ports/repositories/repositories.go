package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo     ClientRepositoryFacade
	MissionRepo    MissionRepositoryFacade
	CategoryRepo   CategoryRepositoryFacade
	PrestationRepo PrestationRepositoryFacade
	ProductRepo    ProductRepositoryFacade
	DocumentRepo   DocumentRepositoryFacade
	SettingsRepo   SettingsRepository
	ContactRepo    ContactRepositoryFacade
}
