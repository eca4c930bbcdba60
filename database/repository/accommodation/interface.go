package accommodationRepo

import "palmera/models"

// AccommodationRepository defines data access for bookable units.
type AccommodationRepository interface {
	Create(acc *models.Accommodation) error
	Update(acc *models.Accommodation) error
	Delete(id string) error
	GetByID(id string) (*models.Accommodation, error)
	// List returns accommodations filtered by status; an empty status
	// returns everything (admin view).
	List(status string) ([]models.Accommodation, error)
}
