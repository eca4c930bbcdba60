package handlers

import (
	"errors"
	"net/http"

	"palmera/models"
	"palmera/services/rates"
	"palmera/utils"

	"github.com/gin-gonic/gin"
)

// RatesHandler exposes the entrance-fee rate table.
type RatesHandler struct {
	Svc rates.RatesService
}

// NewRatesHandler creates a RatesHandler.
func NewRatesHandler(svc rates.RatesService) *RatesHandler {
	return &RatesHandler{Svc: svc}
}

// GetRates returns the current rate table. A table that has never been
// configured reports loaded=false so the UI can tell "no data" from
// "free" instead of trusting zeros.
func (h *RatesHandler) GetRates(c *gin.Context) {
	rt, err := h.Svc.Get()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch rate table", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loaded": rt != nil,
		"rates":  rt,
	})
}

// PutRates replaces the rate table.
func (h *RatesHandler) PutRates(c *gin.Context) {
	var input models.RateTable
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.Put(input); err != nil {
		if errors.Is(err, rates.ErrNegativeRate) {
			utils.JSONError(c, http.StatusBadRequest, "invalid rate table", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to store rate table", err.Error())
		return
	}
	c.JSON(http.StatusOK, input)
}
