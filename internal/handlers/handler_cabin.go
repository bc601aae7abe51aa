package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siamsail/charterdesk/internal/apperrors"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/dto"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// cabinHandler handles HTTP requests related to cabin allocations.
type cabinHandler struct {
	cabinService portssvc.CabinSvcFacade
}

// newCabinHandler creates a new cabinHandler.
func newCabinHandler(cs portssvc.CabinSvcFacade) *cabinHandler {
	return &cabinHandler{
		cabinService: cs,
	}
}

// registerCabinRoutes registers routes related to cabin allocations, both
// nested under their booking and addressed directly by cabin id.
func registerCabinRoutes(rg *gin.RouterGroup, cabinService portssvc.CabinSvcFacade) {
	h := newCabinHandler(cabinService)

	bookingCabins := rg.Group("/bookings/:bookingID/cabins")
	{
		bookingCabins.POST("", h.addCabin)
		bookingCabins.GET("", h.listCabins)
	}

	cabins := rg.Group("/cabins")
	{
		cabins.GET("/:cabinID", h.getCabin)
		cabins.POST("/:cabinID/finance", h.applyFinanceEdit)
		cabins.DELETE("/:cabinID", h.removeCabin)
	}
}

// addCabin godoc
// @Summary Add a cabin allocation to a booking
// @Description Creates a cabin allocation inside a cabin-charter booking
// @Tags cabins
// @Accept  json
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Param   cabin body dto.CreateCabinRequest true "Cabin details"
// @Success 201 {object} dto.CabinResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to add cabin"
// @Router /bookings/{bookingID}/cabins [post]
func (h *cabinHandler) addCabin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	var req dto.CreateCabinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCabin", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to add cabin", slog.String("booking_id", bookingID), slog.String("cabin_name", req.CabinName))

	cabin, err := h.cabinService.AddCabin(c.Request.Context(), bookingID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add cabin")
		return
	}

	logger.Info("Cabin added successfully", slog.String("cabin_id", cabin.CabinID))
	c.JSON(http.StatusCreated, dto.ToCabinResponse(cabin))
}

// listCabins godoc
// @Summary List the cabin allocations of a booking
// @Tags cabins
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Success 200 {array} dto.CabinResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to list cabins"
// @Router /bookings/{bookingID}/cabins [get]
func (h *cabinHandler) listCabins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	cabins, err := h.cabinService.ListCabins(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list cabins")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCabinsResponse(cabins))
}

// getCabin godoc
// @Summary Get a cabin allocation by ID
// @Tags cabins
// @Produce  json
// @Param   cabinID path string true "Cabin ID"
// @Success 200 {object} dto.CabinResponse
// @Failure 404 {object} map[string]string "Cabin not found"
// @Failure 500 {object} map[string]string "Failed to retrieve cabin"
// @Router /cabins/{cabinID} [get]
func (h *cabinHandler) getCabin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cabinID := c.Param("cabinID")

	cabin, err := h.cabinService.GetCabinByID(c.Request.Context(), cabinID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cabin not found"})
		} else {
			logger.Error("Failed to get cabin", slog.String("cabin_id", cabinID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cabin"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCabinResponse(cabin))
}

// applyFinanceEdit godoc
// @Summary Apply a finance edit to a cabin allocation
// @Description Applies one finance edit event to the cabin, including agency commission edits, and recomputes every derived field
// @Tags cabins
// @Accept  json
// @Produce  json
// @Param   cabinID path string true "Cabin ID"
// @Param   edit body dto.FinanceEditRequest true "Finance edit"
// @Success 200 {object} dto.CabinResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Cabin not found"
// @Failure 500 {object} map[string]string "Failed to apply finance edit"
// @Router /cabins/{cabinID}/finance [post]
func (h *cabinHandler) applyFinanceEdit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cabinID := c.Param("cabinID")

	var req dto.FinanceEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for cabin ApplyFinanceEdit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received finance edit", slog.String("cabin_id", cabinID))

	cabin, err := h.cabinService.ApplyFinanceEdit(c.Request.Context(), cabinID, req.ToFinanceEdit(), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to apply finance edit")
		return
	}

	c.JSON(http.StatusOK, dto.ToCabinResponse(cabin))
}

// removeCabin godoc
// @Summary Remove a cabin allocation
// @Description Deletes a cabin allocation with its extra items and payment ledger
// @Tags cabins
// @Produce  json
// @Param   cabinID path string true "Cabin ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Cabin not found"
// @Failure 500 {object} map[string]string "Failed to remove cabin"
// @Router /cabins/{cabinID} [delete]
func (h *cabinHandler) removeCabin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cabinID := c.Param("cabinID")

	if err := h.cabinService.RemoveCabin(c.Request.Context(), cabinID, actorID(c)); err != nil {
		respondServiceError(c, logger, err, "Failed to remove cabin")
		return
	}

	logger.Info("Cabin removed", slog.String("cabin_id", cabinID))
	c.Status(http.StatusNoContent)
}
