package blockedRepo

import "palmera/models"

// BlockedRepository defines data access for blocked date ranges.
type BlockedRepository interface {
	Create(b *models.BlockedRange) error
	Update(b *models.BlockedRange) error
	Delete(id string) error
	GetByID(id string) (*models.BlockedRange, error)
	// List returns every blocked range, manual and reservation-derived.
	List() ([]models.BlockedRange, error)
	// ListManual returns only manually curated ranges (the editable set).
	ListManual() ([]models.BlockedRange, error)
	// ListForWindow returns ranges that could intersect [startDate, endDate)
	// for the given accommodation, including resort-wide ranges.
	ListForWindow(startDate, endDate, accommodationID string) ([]models.BlockedRange, error)
	// DeleteByReservation removes the derived range for a cancelled reservation.
	DeleteByReservation(reservationID string) error
}
