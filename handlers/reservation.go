package handlers

import (
	"errors"
	"net/http"

	reservationRepo "palmera/database/repository/reservation"
	"palmera/services/booking"
	"palmera/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes admin reservation management.
type ReservationHandler struct {
	Svc booking.ReservationAdminService
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(svc booking.ReservationAdminService) *ReservationHandler {
	return &ReservationHandler{Svc: svc}
}

// ListReservations returns reservations, optionally filtered by status.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.Svc.ListReservations(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns one reservation by id.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	res, err := h.Svc.GetReservation(c.Param("id"))
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateStatus moves a reservation through its lifecycle.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.UpdateReservationStatus(c.Param("id"), input.Status); err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update reservation status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// RecordPayment registers a follow-up payment against a reservation.
func (h *ReservationHandler) RecordPayment(c *gin.Context) {
	var input struct {
		Amount    float64 `json:"amount" binding:"required"`
		InvoiceID string  `json:"invoiceId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.RecordReservationPayment(c.Param("id"), input.Amount, input.InvoiceID); err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment recorded"})
}
