package booking

import (
	accommodationRepo "palmera/database/repository/accommodation"
	amenityRepo "palmera/database/repository/amenity"
	blockedRepo "palmera/database/repository/blocked"
	ratesRepo "palmera/database/repository/rates"
	reservationRepo "palmera/database/repository/reservation"
	"palmera/models"
	"palmera/services/pricing"
)

// StartDraftInput carries the guest's initial wizard selections.
type StartDraftInput struct {
	AccommodationID string      `json:"accommodationId" binding:"required"`
	Mode            models.Mode `json:"mode" binding:"required"`
	StartDate       string      `json:"startDate" binding:"required"`
	EndDate         string      `json:"endDate" binding:"required"`
}

// ConfirmInput carries the final payment step.
type ConfirmInput struct {
	Amount     float64 `json:"amount" binding:"required"`
	Method     string  `json:"method" binding:"required"` // "card" or "cash"
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone string  `json:"guestPhone"`
}

// BookingService drives the three-step reservation wizard: select
// booking, enter info, pay. Every mutation recomputes the draft's amount
// breakdown in full before saving.
type BookingService interface {
	StartDraft(input StartDraftInput) (*models.BookingDraft, error)
	GetDraft(draftID string) (*models.BookingDraft, error)
	CancelDraft(draftID string) error

	IncrementTicket(draftID string, cat models.GuestCategory) (*models.BookingDraft, error)
	DecrementTicket(draftID string, cat models.GuestCategory) (*models.BookingDraft, error)
	SetTicket(draftID string, cat models.GuestCategory, value int) (*models.BookingDraft, error)
	ClearTickets(draftID string) (*models.BookingDraft, error)

	ToggleAmenity(draftID, amenityID string, value int) (*models.BookingDraft, error)
	ClearAmenities(draftID string) (*models.BookingDraft, error)

	SetMode(draftID string, mode models.Mode) (*models.BookingDraft, error)
	SetDates(draftID, startDate, endDate string) (*models.BookingDraft, error)
	SetIncludeEntranceFee(draftID string, include bool) (*models.BookingDraft, error)
	SetGuestInfo(draftID, name, email, phone string) (*models.BookingDraft, error)

	ValidatePayment(draftID string, amount float64) (pricing.PaymentValidation, error)
	ConfirmReservation(draftID string, input ConfirmInput) (*models.Reservation, *models.Invoice, error)
}

// DefaultBookingService is the production wizard engine.
type DefaultBookingService struct {
	AccommodationRepo accommodationRepo.AccommodationRepository
	AmenityRepo       amenityRepo.AmenityRepository
	RatesRepo         ratesRepo.RatesRepository
	BlockedRepo       blockedRepo.BlockedRepository
	ReservationRepo   reservationRepo.ReservationRepository
	Drafts            DraftRepository
	Payments          PaymentHandler
	Tasks             TaskEnqueuer
}
