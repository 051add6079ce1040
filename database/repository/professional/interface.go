package professionalRepo

import "glambook/models"

// ProfessionalRepository defines data access for professionals and their
// weekly schedules. The booking flow reads schedules through GetByID only;
// schedule writes come from the provider-side management endpoints.
type ProfessionalRepository interface {
	GetByID(id string) (*models.Professional, error)
	ListByProvider(providerID string) ([]models.Professional, error)
	Create(prof *models.Professional) error
	UpdateSchedule(id string, schedule models.WeeklySchedule) error
}
