package handlers

import (
	"errors"
	"net/http"

	"palmera/models"
	"palmera/services/booking"
	"palmera/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the three-step reservation wizard.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// StartDraft begins a wizard session.
func (h *BookingHandler) StartDraft(c *gin.Context) {
	var input booking.StartDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	draft, err := h.Svc.StartDraft(input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft reloads and reprices a draft.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.Svc.GetDraft(c.Param("draftID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CancelDraft discards a draft.
func (h *BookingHandler) CancelDraft(c *gin.Context) {
	if err := h.Svc.CancelDraft(c.Param("draftID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft cancelled"})
}

// UpdateTickets applies one ticket edit: increment, decrement, a direct
// numeric entry, or clear-all.
func (h *BookingHandler) UpdateTickets(c *gin.Context) {
	var input struct {
		Op       string               `json:"op" binding:"required"`
		Category models.GuestCategory `json:"category"`
		Value    int                  `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draftID := c.Param("draftID")
	if input.Op != "clear" && !input.Category.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown guest category")
		return
	}

	var (
		draft *models.BookingDraft
		err   error
	)
	switch input.Op {
	case "increment":
		draft, err = h.Svc.IncrementTicket(draftID, input.Category)
	case "decrement":
		draft, err = h.Svc.DecrementTicket(draftID, input.Category)
	case "set":
		draft, err = h.Svc.SetTicket(draftID, input.Category, input.Value)
	case "clear":
		draft, err = h.Svc.ClearTickets(draftID)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown ticket operation")
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateAmenities toggles one amenity include flag or clears the selection.
func (h *BookingHandler) UpdateAmenities(c *gin.Context) {
	var input struct {
		Op        string `json:"op" binding:"required"`
		AmenityID string `json:"amenityId"`
		Value     int    `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draftID := c.Param("draftID")
	var (
		draft *models.BookingDraft
		err   error
	)
	switch input.Op {
	case "toggle":
		if input.AmenityID == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "missing amenity id")
			return
		}
		draft, err = h.Svc.ToggleAmenity(draftID, input.AmenityID, input.Value)
	case "clear":
		draft, err = h.Svc.ClearAmenities(draftID)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown amenity operation")
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetMode switches the day/night tariff for the draft.
func (h *BookingHandler) SetMode(c *gin.Context) {
	var input struct {
		Mode models.Mode `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	draft, err := h.Svc.SetMode(c.Param("draftID"), input.Mode)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetDates moves the draft's stay window.
func (h *BookingHandler) SetDates(c *gin.Context) {
	var input struct {
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	draft, err := h.Svc.SetDates(c.Param("draftID"), input.StartDate, input.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetEntrance records the guest's entrance-fee opt-in.
func (h *BookingHandler) SetEntrance(c *gin.Context) {
	var input struct {
		Include *bool `json:"include" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	draft, err := h.Svc.SetIncludeEntranceFee(c.Param("draftID"), *input.Include)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetGuestInfo records the guest's contact details.
func (h *BookingHandler) SetGuestInfo(c *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	draft, err := h.Svc.SetGuestInfo(c.Param("draftID"), input.Name, input.Email, input.Phone)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ValidatePayment checks a proposed payment amount without committing.
func (h *BookingHandler) ValidatePayment(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	v, err := h.Svc.ValidatePayment(c.Param("draftID"), input.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Confirm finalizes the reservation and processes payment.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input booking.ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	reservation, invoice, err := h.Svc.ConfirmReservation(c.Param("draftID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"reservation": reservation,
		"invoice":     invoice,
	})
}

// respondError maps service errors onto HTTP statuses. Payment bound
// violations carry the validation payload so the UI can render which
// bound failed.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var boundErr *booking.PaymentBoundError
	switch {
	case errors.Is(err, booking.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking draft not found", "the draft expired or never existed")
	case errors.Is(err, booking.ErrUnresolvedAccommodation):
		utils.JSONError(c, http.StatusNotFound, "accommodation not found", "the selected accommodation no longer exists")
	case errors.Is(err, booking.ErrInvalidMode), errors.Is(err, booking.ErrInvalidDates):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, booking.ErrDatesBlocked):
		utils.JSONError(c, http.StatusConflict, "dates unavailable", "the requested dates conflict with an existing block")
	case errors.As(err, &boundErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":    "payment amount out of bounds",
			"validation": boundErr.Validation,
		})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking request failed", err.Error())
	}
}
