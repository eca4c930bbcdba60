// Package catalog manages the accommodation and amenity catalogs: the
// admin CRUD surface plus the POSTED-only views the guest site reads.
package catalog

import (
	"errors"

	accommodationRepo "palmera/database/repository/accommodation"
	amenityRepo "palmera/database/repository/amenity"
	"palmera/models"

	"github.com/google/uuid"
)

// ErrInvalidStatus is returned for a status outside the known lifecycle.
var ErrInvalidStatus = errors.New("invalid status")

// CatalogService manages accommodations and amenities.
type CatalogService interface {
	CreateAccommodation(acc models.Accommodation) (*models.Accommodation, error)
	UpdateAccommodation(acc models.Accommodation) error
	DeleteAccommodation(id string) error
	GetAccommodation(id string) (*models.Accommodation, error)
	// ListAccommodations with publicOnly returns POSTED entries only.
	ListAccommodations(publicOnly bool) ([]models.Accommodation, error)

	CreateAmenity(a models.Amenity) (*models.Amenity, error)
	UpdateAmenity(a models.Amenity) error
	DeleteAmenity(id string) error
	ListAmenities(publicOnly bool) ([]models.Amenity, error)
}

// DefaultCatalogService is the production catalog service.
type DefaultCatalogService struct {
	AccommodationRepo accommodationRepo.AccommodationRepository
	AmenityRepo       amenityRepo.AmenityRepository
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPosted, models.StatusUnpublished, models.StatusArchived:
		return true
	}
	return false
}

func (s *DefaultCatalogService) CreateAccommodation(acc models.Accommodation) (*models.Accommodation, error) {
	if acc.Status == "" {
		acc.Status = models.StatusUnpublished
	}
	if !validStatus(acc.Status) {
		return nil, ErrInvalidStatus
	}
	acc.ID = uuid.New().String()
	if err := s.AccommodationRepo.Create(&acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *DefaultCatalogService) UpdateAccommodation(acc models.Accommodation) error {
	if !validStatus(acc.Status) {
		return ErrInvalidStatus
	}
	return s.AccommodationRepo.Update(&acc)
}

func (s *DefaultCatalogService) DeleteAccommodation(id string) error {
	return s.AccommodationRepo.Delete(id)
}

func (s *DefaultCatalogService) GetAccommodation(id string) (*models.Accommodation, error) {
	return s.AccommodationRepo.GetByID(id)
}

func (s *DefaultCatalogService) ListAccommodations(publicOnly bool) ([]models.Accommodation, error) {
	status := ""
	if publicOnly {
		status = models.StatusPosted
	}
	return s.AccommodationRepo.List(status)
}

func (s *DefaultCatalogService) CreateAmenity(a models.Amenity) (*models.Amenity, error) {
	if a.Status == "" {
		a.Status = models.StatusUnpublished
	}
	if !validStatus(a.Status) {
		return nil, ErrInvalidStatus
	}
	a.ID = uuid.New().String()
	if err := s.AmenityRepo.Create(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *DefaultCatalogService) UpdateAmenity(a models.Amenity) error {
	if !validStatus(a.Status) {
		return ErrInvalidStatus
	}
	return s.AmenityRepo.Update(&a)
}

func (s *DefaultCatalogService) DeleteAmenity(id string) error {
	return s.AmenityRepo.Delete(id)
}

func (s *DefaultCatalogService) ListAmenities(publicOnly bool) ([]models.Amenity, error) {
	status := ""
	if publicOnly {
		status = models.StatusPosted
	}
	return s.AmenityRepo.List(status)
}
