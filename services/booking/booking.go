package booking

import (
	"context"
	"errors"
	"time"

	accommodationRepo "palmera/database/repository/accommodation"
	"palmera/models"
	"palmera/services/availability"
	"palmera/services/pricing"
	"palmera/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartDraft creates a new booking draft for the selected accommodation,
// checks the requested window against blocked dates, prices it, and
// stores it in the draft session store.
func (s *DefaultBookingService) StartDraft(input StartDraftInput) (*models.BookingDraft, error) {
	ctx := context.Background()

	if !input.Mode.Valid() {
		return nil, ErrInvalidMode
	}
	acc, err := s.resolveAccommodation(input.AccommodationID)
	if err != nil {
		return nil, err
	}
	if err := s.checkDates(input.StartDate, input.EndDate, acc.ID); err != nil {
		return nil, err
	}

	draft := &models.BookingDraft{
		DraftID:         uuid.New().String(),
		AccommodationID: acc.ID,
		Mode:            input.Mode,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Amenities:       models.AmenitySelection{},
		// Entrance is opt-out when the accommodation lacks bundled pool
		// access; with pool access the flag is irrelevant.
		IncludeEntranceFee: !acc.HasPoolAccess,
		CreatedAt:          time.Now(),
	}
	s.recompute(draft, acc)

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft reloads a draft and reprices it against fresh catalog data.
func (s *DefaultBookingService) GetDraft(draftID string) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		return nil
	})
}

// CancelDraft discards the draft. There are no cleanup obligations.
func (s *DefaultBookingService) CancelDraft(draftID string) error {
	return s.Drafts.Clear(context.Background(), draftID)
}

// IncrementTicket adds one entrance ticket for the category. At capacity
// the edit is silently ignored.
func (s *DefaultBookingService) IncrementTicket(draftID string, cat models.GuestCategory) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.Tickets = pricing.IncrementTicket(d.Tickets, cat, acc.Capacity)
		return nil
	})
}

// DecrementTicket removes one entrance ticket for the category, floored at 0.
func (s *DefaultBookingService) DecrementTicket(draftID string, cat models.GuestCategory) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.Tickets = pricing.DecrementTicket(d.Tickets, cat)
		return nil
	})
}

// SetTicket applies a direct numeric entry, clamped into the remaining
// capacity headroom.
func (s *DefaultBookingService) SetTicket(draftID string, cat models.GuestCategory, value int) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.Tickets = pricing.SetTicket(d.Tickets, cat, value, acc.Capacity, pricing.DefaultClamp)
		return nil
	})
}

// ClearTickets resets every category to zero.
func (s *DefaultBookingService) ClearTickets(draftID string) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.Tickets = pricing.ClearTickets()
		return nil
	})
}

// ToggleAmenity writes an amenity include flag, clamped into {0,1}.
func (s *DefaultBookingService) ToggleAmenity(draftID, amenityID string, value int) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.Amenities = pricing.ToggleAmenity(d.Amenities, amenityID, value, pricing.DefaultClamp)
		return nil
	})
}

// ClearAmenities resets the amenity selection.
func (s *DefaultBookingService) ClearAmenities(draftID string) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.Amenities = pricing.ClearAmenities()
		return nil
	})
}

// SetMode switches the day/night tariff.
func (s *DefaultBookingService) SetMode(draftID string, mode models.Mode) (*models.BookingDraft, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.Mode = mode
		return nil
	})
}

// SetDates moves the requested window, re-checking blocked ranges.
func (s *DefaultBookingService) SetDates(draftID, startDate, endDate string) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		if err := s.checkDates(startDate, endDate, acc.ID); err != nil {
			return err
		}
		d.StartDate = startDate
		d.EndDate = endDate
		return nil
	})
}

// SetIncludeEntranceFee records the guest's entrance opt-in. Ignored when
// the accommodation bundles pool access.
func (s *DefaultBookingService) SetIncludeEntranceFee(draftID string, include bool) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		if !acc.HasPoolAccess {
			d.IncludeEntranceFee = include
		}
		return nil
	})
}

// SetGuestInfo records the guest's contact details (wizard step two).
func (s *DefaultBookingService) SetGuestInfo(draftID, name, email, phone string) (*models.BookingDraft, error) {
	return s.mutate(draftID, func(d *models.BookingDraft, acc *models.Accommodation) error {
		d.GuestName = name
		d.GuestEmail = email
		d.GuestPhone = phone
		return nil
	})
}

// ValidatePayment checks a proposed payment amount against the draft's
// current breakdown without mutating anything.
func (s *DefaultBookingService) ValidatePayment(draftID string, amount float64) (pricing.PaymentValidation, error) {
	draft, err := s.GetDraft(draftID)
	if err != nil {
		return pricing.PaymentValidation{}, err
	}
	return pricing.ValidatePayment(amount, draft.Amount), nil
}

// mutate loads the draft, applies the edit, recomputes the breakdown in
// full, and saves. The breakdown is never patched incrementally; every
// edit reprices the whole draft so the dependent numbers cannot drift.
func (s *DefaultBookingService) mutate(draftID string, apply func(d *models.BookingDraft, acc *models.Accommodation) error) (*models.BookingDraft, error) {
	ctx := context.Background()

	draft, err := s.Drafts.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	acc, err := s.resolveAccommodation(draft.AccommodationID)
	if err != nil {
		return nil, err
	}
	if err := apply(draft, acc); err != nil {
		return nil, err
	}
	s.recompute(draft, acc)

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// recompute derives the full amount breakdown from the draft's current
// inputs. Rate table or catalog load failures degrade to zero prices;
// the wizard shows a loading state instead of stalling.
func (s *DefaultBookingService) recompute(draft *models.BookingDraft, acc *models.Accommodation) {
	logger := utils.GetLogger()

	rt, err := s.RatesRepo.Get()
	if err != nil {
		logger.Warn("recompute: rate table unavailable, pricing entrance at zero", zap.Error(err))
		rt = nil
	}
	amenitiesTotal := 0.0
	catalog, err := s.AmenityRepo.List(models.StatusPosted)
	if err != nil {
		logger.Warn("recompute: amenity catalog unavailable, pricing amenities at zero", zap.Error(err))
	} else {
		amenitiesTotal = pricing.AmenitiesTotal(catalog, draft.Amenities)
	}

	draft.Amount = pricing.ComputeAmount(*acc, draft.Mode, draft.Tickets, rt, amenitiesTotal, draft.IncludeEntranceFee)
}

// resolveAccommodation maps a missing accommodation onto the typed error
// the wizard surfaces to the guest.
func (s *DefaultBookingService) resolveAccommodation(id string) (*models.Accommodation, error) {
	acc, err := s.AccommodationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, accommodationRepo.ErrNotFound) {
			return nil, ErrUnresolvedAccommodation
		}
		return nil, err
	}
	return acc, nil
}

// checkDates validates the window shape and rejects blocked dates.
// Blocked-range load failures fail open here (display concern);
// confirmation re-checks and fails closed.
func (s *DefaultBookingService) checkDates(startDate, endDate, accommodationID string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return ErrInvalidDates
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return ErrInvalidDates
	}
	if !end.After(start) {
		return ErrInvalidDates
	}

	ranges, err := s.BlockedRepo.ListForWindow(startDate, endDate, accommodationID)
	if err != nil {
		utils.GetLogger().Warn("checkDates: blocked ranges unavailable, allowing for display",
			zap.String("accommodationID", accommodationID), zap.Error(err))
		return nil
	}
	if availability.IsBlocked(startDate, endDate, accommodationID, ranges) {
		return ErrDatesBlocked
	}
	return nil
}
