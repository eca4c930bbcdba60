package handlers

import (
	"errors"
	"net/http"

	blockedRepo "palmera/database/repository/blocked"
	"palmera/models"
	"palmera/services/blocked"
	"palmera/utils"

	"github.com/gin-gonic/gin"
)

// BlockedHandler exposes blocked-date management and the public
// availability check.
type BlockedHandler struct {
	Svc blocked.BlockedService
}

// NewBlockedHandler creates a BlockedHandler.
func NewBlockedHandler(svc blocked.BlockedService) *BlockedHandler {
	return &BlockedHandler{Svc: svc}
}

// CheckAvailability answers whether a proposed stay window is bookable.
// Query params: startDate, endDate, accommodationId (optional for a
// resort-wide check).
func (h *BlockedHandler) CheckAvailability(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "startDate and endDate are required")
		return
	}

	conflicts, err := h.Svc.CheckWindow(startDate, endDate, c.Query("accommodationId"))
	if err != nil {
		// Fail open for display: the booking service re-checks on confirm.
		c.JSON(http.StatusOK, gin.H{"available": true, "verified": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": len(conflicts) == 0,
		"verified":  true,
		"conflicts": conflicts,
	})
}

// ListBlocked returns the manually curated ranges (the admin-editable set).
func (h *BlockedHandler) ListBlocked(c *gin.Context) {
	var (
		ranges []models.BlockedRange
		err    error
	)
	if c.Query("all") == "true" {
		ranges, err = h.Svc.ListAll()
	} else {
		ranges, err = h.Svc.ListEditable()
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list blocked ranges", err.Error())
		return
	}
	c.JSON(http.StatusOK, ranges)
}

// CreateBlocked adds a manual blocked range.
func (h *BlockedHandler) CreateBlocked(c *gin.Context) {
	var input models.BlockedRange
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	b, err := h.Svc.Create(input)
	if err != nil {
		h.respondBlockedError(c, err, "failed to create blocked range")
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBlocked edits a manual blocked range.
func (h *BlockedHandler) UpdateBlocked(c *gin.Context) {
	var input models.BlockedRange
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.BlockID = c.Param("id")
	if err := h.Svc.Update(input); err != nil {
		h.respondBlockedError(c, err, "failed to update blocked range")
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeleteBlocked removes a manual blocked range.
func (h *BlockedHandler) DeleteBlocked(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		h.respondBlockedError(c, err, "failed to delete blocked range")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blocked range deleted"})
}

func (h *BlockedHandler) respondBlockedError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, blocked.ErrInvalidDates):
		utils.JSONError(c, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, blocked.ErrSystemManaged):
		utils.JSONError(c, http.StatusForbidden, message, "reservation-derived blocks follow their reservation")
	case errors.Is(err, blockedRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
