package services

// ServiceContainer holds instances of all the application services.
// It is built once in main and handed to the handlers.
type ServiceContainer struct {
	Client      ClientSvcFacade
	Mission     MissionSvcFacade
	Catalog     CatalogSvcFacade
	Document    DocumentSvcFacade
	Settings    SettingsSvcFacade
	Contact     ContactSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthHandlerSvcFacade
}
