package records

import (
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every typed repository onto the same document store.
func NewRepositoryProvider(store portsrepo.DocumentStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:     newClientRepository(store),
		MissionRepo:    newMissionRepository(store),
		CategoryRepo:   newCategoryRepository(store),
		PrestationRepo: newPrestationRepository(store),
		ProductRepo:    newProductRepository(store),
		DocumentRepo:   newDocumentRepository(store),
		SettingsRepo:   newSettingsRepository(store),
		ContactRepo:    newContactRepository(store),
	}
}
