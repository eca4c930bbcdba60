// Package blocked manages blocked date ranges: the manually curated
// admin set plus the ranges derived from confirmed reservations. Both
// feed the same availability predicate; only the manual ones are
// editable here.
package blocked

import (
	"errors"
	"time"

	blockedRepo "palmera/database/repository/blocked"
	"palmera/models"
	"palmera/services/availability"

	"github.com/google/uuid"
)

var (
	// ErrSystemManaged rejects edits to reservation-derived ranges; those
	// follow their reservation's lifecycle instead.
	ErrSystemManaged = errors.New("blocked range is reservation-managed")
	// ErrInvalidDates is returned for malformed or inverted ranges.
	ErrInvalidDates = errors.New("invalid date range")
)

// BlockedService manages blocked date ranges and answers availability
// queries for the guest site.
type BlockedService interface {
	Create(b models.BlockedRange) (*models.BlockedRange, error)
	Update(b models.BlockedRange) error
	Delete(id string) error
	// ListEditable returns only manually curated ranges.
	ListEditable() ([]models.BlockedRange, error)
	// ListAll returns every range, manual and derived.
	ListAll() ([]models.BlockedRange, error)
	// CheckWindow reports the conflicts for a proposed stay. A load
	// failure returns no conflicts (fail open for display); confirmation
	// re-checks inside the booking service.
	CheckWindow(startDate, endDate, accommodationID string) ([]models.BlockedRange, error)
}

// DefaultBlockedService is the production blocked-dates service.
type DefaultBlockedService struct {
	Repo blockedRepo.BlockedRepository
}

func validWindow(startDate, endDate string) bool {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return false
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return false
	}
	return end.After(start)
}

func (s *DefaultBlockedService) Create(b models.BlockedRange) (*models.BlockedRange, error) {
	if !validWindow(b.StartDate, b.EndDate) {
		return nil, ErrInvalidDates
	}
	b.BlockID = uuid.New().String()
	b.FromReservation = false
	b.ReservationID = ""
	if err := s.Repo.Create(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *DefaultBlockedService) Update(b models.BlockedRange) error {
	if !validWindow(b.StartDate, b.EndDate) {
		return ErrInvalidDates
	}
	existing, err := s.Repo.GetByID(b.BlockID)
	if err != nil {
		return err
	}
	if existing.FromReservation {
		return ErrSystemManaged
	}
	b.FromReservation = false
	b.ReservationID = ""
	b.CreatedAt = existing.CreatedAt
	return s.Repo.Update(&b)
}

func (s *DefaultBlockedService) Delete(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.FromReservation {
		return ErrSystemManaged
	}
	return s.Repo.Delete(id)
}

func (s *DefaultBlockedService) ListEditable() ([]models.BlockedRange, error) {
	return s.Repo.ListManual()
}

func (s *DefaultBlockedService) ListAll() ([]models.BlockedRange, error) {
	return s.Repo.List()
}

func (s *DefaultBlockedService) CheckWindow(startDate, endDate, accommodationID string) ([]models.BlockedRange, error) {
	ranges, err := s.Repo.ListForWindow(startDate, endDate, accommodationID)
	if err != nil {
		return nil, err
	}
	return availability.Conflicts(startDate, endDate, accommodationID, ranges), nil
}
