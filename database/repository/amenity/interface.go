package amenityRepo

import "palmera/models"

// AmenityRepository defines data access for amenity catalog entries.
type AmenityRepository interface {
	Create(a *models.Amenity) error
	Update(a *models.Amenity) error
	Delete(id string) error
	GetByID(id string) (*models.Amenity, error)
	// List returns amenities filtered by status; an empty status returns
	// everything (admin view).
	List(status string) ([]models.Amenity, error)
}
