package handlers

import (
	"errors"
	"net/http"

	accommodationRepo "palmera/database/repository/accommodation"
	amenityRepo "palmera/database/repository/amenity"
	"palmera/models"
	"palmera/services/catalog"
	"palmera/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the accommodation and amenity catalogs: the
// public POSTED-only views plus the admin CRUD surface.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListAccommodations returns the guest-facing accommodation list.
func (h *CatalogHandler) ListAccommodations(c *gin.Context) {
	accs, err := h.Svc.ListAccommodations(true)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list accommodations", err.Error())
		return
	}
	c.JSON(http.StatusOK, accs)
}

// GetAccommodation returns one accommodation by id.
func (h *CatalogHandler) GetAccommodation(c *gin.Context) {
	acc, err := h.Svc.GetAccommodation(c.Param("id"))
	if err != nil {
		if errors.Is(err, accommodationRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "accommodation not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch accommodation", err.Error())
		return
	}
	c.JSON(http.StatusOK, acc)
}

// AdminListAccommodations returns every accommodation regardless of status.
func (h *CatalogHandler) AdminListAccommodations(c *gin.Context) {
	accs, err := h.Svc.ListAccommodations(false)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list accommodations", err.Error())
		return
	}
	c.JSON(http.StatusOK, accs)
}

// CreateAccommodation adds a catalog entry.
func (h *CatalogHandler) CreateAccommodation(c *gin.Context) {
	var input models.Accommodation
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	acc, err := h.Svc.CreateAccommodation(input)
	if err != nil {
		h.respondCatalogError(c, err, "failed to create accommodation")
		return
	}
	c.JSON(http.StatusCreated, acc)
}

// UpdateAccommodation replaces a catalog entry.
func (h *CatalogHandler) UpdateAccommodation(c *gin.Context) {
	var input models.Accommodation
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")
	if err := h.Svc.UpdateAccommodation(input); err != nil {
		h.respondCatalogError(c, err, "failed to update accommodation")
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeleteAccommodation removes a catalog entry.
func (h *CatalogHandler) DeleteAccommodation(c *gin.Context) {
	if err := h.Svc.DeleteAccommodation(c.Param("id")); err != nil {
		h.respondCatalogError(c, err, "failed to delete accommodation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "accommodation deleted"})
}

// ListAmenities returns the guest-facing amenity list.
func (h *CatalogHandler) ListAmenities(c *gin.Context) {
	amenities, err := h.Svc.ListAmenities(true)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list amenities", err.Error())
		return
	}
	c.JSON(http.StatusOK, amenities)
}

// AdminListAmenities returns every amenity regardless of status.
func (h *CatalogHandler) AdminListAmenities(c *gin.Context) {
	amenities, err := h.Svc.ListAmenities(false)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list amenities", err.Error())
		return
	}
	c.JSON(http.StatusOK, amenities)
}

// CreateAmenity adds an amenity catalog entry.
func (h *CatalogHandler) CreateAmenity(c *gin.Context) {
	var input models.Amenity
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	a, err := h.Svc.CreateAmenity(input)
	if err != nil {
		h.respondCatalogError(c, err, "failed to create amenity")
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateAmenity replaces an amenity catalog entry.
func (h *CatalogHandler) UpdateAmenity(c *gin.Context) {
	var input models.Amenity
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")
	if err := h.Svc.UpdateAmenity(input); err != nil {
		h.respondCatalogError(c, err, "failed to update amenity")
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeleteAmenity removes an amenity catalog entry.
func (h *CatalogHandler) DeleteAmenity(c *gin.Context) {
	if err := h.Svc.DeleteAmenity(c.Param("id")); err != nil {
		h.respondCatalogError(c, err, "failed to delete amenity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "amenity deleted"})
}

func (h *CatalogHandler) respondCatalogError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, catalog.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, accommodationRepo.ErrNotFound), errors.Is(err, amenityRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
