package providerRepo

import "glambook/models"

// ProviderRepository defines data access for provider businesses and their
// service catalogues.
type ProviderRepository interface {
	GetByID(id string) (*models.Provider, error)
	Create(provider *models.Provider) error
	UpdateServices(id string, services []models.Service) error
}
