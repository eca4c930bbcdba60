package booking

import (
	"fmt"

	"palmera/models"
)

// Admin-facing reservation operations.

// ReservationAdminService is the slice of the booking engine the admin
// portal uses to manage confirmed reservations.
type ReservationAdminService interface {
	ListReservations(status string) ([]models.Reservation, error)
	GetReservation(id string) (*models.Reservation, error)
	UpdateReservationStatus(id, status string) error
	RecordReservationPayment(id string, amount float64, invoiceID string) error
}

// ListReservations returns reservations, optionally filtered by status.
func (s *DefaultBookingService) ListReservations(status string) ([]models.Reservation, error) {
	return s.ReservationRepo.List(status)
}

// GetReservation retrieves a single reservation.
func (s *DefaultBookingService) GetReservation(id string) (*models.Reservation, error) {
	return s.ReservationRepo.GetByID(id)
}

// UpdateReservationStatus moves a reservation through its lifecycle. A
// cancellation also releases the derived blocked range so the dates open
// up again.
func (s *DefaultBookingService) UpdateReservationStatus(id, status string) error {
	switch status {
	case models.ReservationPending, models.ReservationConfirmed,
		models.ReservationCancelled, models.ReservationCompleted:
	default:
		return fmt.Errorf("unknown reservation status: %s", status)
	}

	if err := s.ReservationRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	if status == models.ReservationCancelled {
		if err := s.BlockedRepo.DeleteByReservation(id); err != nil {
			return fmt.Errorf("reservation cancelled but blocked range not released: %w", err)
		}
	}
	return nil
}

// RecordReservationPayment registers a follow-up payment (e.g., the
// balance after a down payment) against a reservation.
func (s *DefaultBookingService) RecordReservationPayment(id string, amount float64, invoiceID string) error {
	res, err := s.ReservationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if amount <= 0 || res.AmountPaid+amount > res.Amount.Total {
		return fmt.Errorf("payment of %.2f would exceed reservation total %.2f", amount, res.Amount.Total)
	}
	if err := s.ReservationRepo.RecordPayment(id, amount, invoiceID); err != nil {
		return err
	}
	if res.AmountPaid+amount >= res.Amount.Total {
		return s.ReservationRepo.UpdateStatus(id, models.ReservationConfirmed)
	}
	return nil
}
