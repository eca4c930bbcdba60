package booking

import (
	"context"
	"fmt"
	"time"

	"palmera/models"
	"palmera/services/availability"
	"palmera/services/pricing"
	"palmera/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmReservation finalizes the wizard: it re-validates the payment
// amount against the freshly recomputed breakdown, re-checks the blocked
// ranges server-side (failing closed this time), processes the payment,
// persists the reservation, and enqueues the derived blocked range before
// discarding the draft. Unlike display-time repricing, a rate-table or
// catalog outage here aborts the confirmation rather than degrading the
// total to zero.
func (s *DefaultBookingService) ConfirmReservation(draftID string, input ConfirmInput) (*models.Reservation, *models.Invoice, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	draft, err := s.Drafts.Load(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	acc, err := s.resolveAccommodation(draft.AccommodationID)
	if err != nil {
		return nil, nil, err
	}
	rt, err := s.RatesRepo.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rate table for confirmation: %w", err)
	}
	catalog, err := s.AmenityRepo.List(models.StatusPosted)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load amenity catalog for confirmation: %w", err)
	}
	draft.Amount = pricing.ComputeAmount(*acc, draft.Mode, draft.Tickets, rt,
		pricing.AmenitiesTotal(catalog, draft.Amenities), draft.IncludeEntranceFee)
	if input.GuestName != "" {
		draft.GuestName = input.GuestName
	}
	if input.GuestEmail != "" {
		draft.GuestEmail = input.GuestEmail
	}
	if input.GuestPhone != "" {
		draft.GuestPhone = input.GuestPhone
	}

	if v := pricing.ValidatePayment(input.Amount, draft.Amount); !v.OK {
		return nil, nil, &PaymentBoundError{Validation: v}
	}

	// The display-time availability check fails open; this one does not.
	ranges, err := s.BlockedRepo.ListForWindow(draft.StartDate, draft.EndDate, draft.AccommodationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to verify availability: %w", err)
	}
	if availability.IsBlocked(draft.StartDate, draft.EndDate, draft.AccommodationID, ranges) {
		return nil, nil, ErrDatesBlocked
	}

	reservationID := uuid.New().String()
	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		ReservationID: reservationID,
		GuestEmail:    draft.GuestEmail,
		Amount:        input.Amount,
		Method:        input.Method,
		Idempotency:   draftID,
		Description:   fmt.Sprintf("Reservation %s (%s to %s)", reservationID, draft.StartDate, draft.EndDate),
		Metadata: map[string]string{
			"accommodationId": draft.AccommodationID,
			"mode":            string(draft.Mode),
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("payment failed: %w", err)
	}

	status := models.ReservationPending
	if input.Amount >= draft.Amount.Total {
		status = models.ReservationConfirmed
	}
	reservation := &models.Reservation{
		ID:              reservationID,
		AccommodationID: draft.AccommodationID,
		Mode:            draft.Mode,
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
		Tickets:         draft.Tickets,
		Amenities:       draft.Amenities,
		GuestName:       draft.GuestName,
		GuestEmail:      draft.GuestEmail,
		GuestPhone:      draft.GuestPhone,
		Amount:          draft.Amount,
		AmountPaid:      input.Amount,
		InvoiceID:       invoice.InvoiceID,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	if err := s.ReservationRepo.Create(reservation); err != nil {
		return nil, nil, fmt.Errorf("failed to store reservation: %w", err)
	}

	// The derived blocked range is written by the background worker; a
	// failed enqueue is logged rather than unwinding a paid reservation.
	if err := s.Tasks.EnqueueBlockSync(*reservation); err != nil {
		logger.Error("ConfirmReservation: failed to enqueue block sync",
			zap.String("reservationID", reservation.ID), zap.Error(err))
	}

	if err := s.Drafts.Clear(ctx, draftID); err != nil {
		logger.Warn("ConfirmReservation: failed to clear draft", zap.String("draftID", draftID), zap.Error(err))
	}
	return reservation, invoice, nil
}
