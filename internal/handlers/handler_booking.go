package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siamsail/charterdesk/internal/apperrors"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/dto"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

// newBookingHandler creates a new bookingHandler.
func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/:bookingID", h.getBooking)
		bookings.PATCH("/:bookingID", h.updateBookingDetails)
		bookings.POST("/:bookingID/finance", h.applyFinanceEdit)
		bookings.GET("/:bookingID/finance/summary", h.getFinanceSummary)
		bookings.DELETE("/:bookingID", h.deleteBooking)
	}
}

// createBooking godoc
// @Summary Create a new booking
// @Description Creates a new charter booking with default commission rates and derived totals computed
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Duplicate booking reference"
// @Failure 500 {object} map[string]string "Failed to create booking"
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID := actorID(c)
	logger.Info("Received request to create booking", slog.String("reference", req.Reference), slog.String("currency", req.Currency))

	newBooking, err := h.bookingService.CreateBooking(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating booking", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate booking reference", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create booking in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	logger.Info("Booking created successfully", slog.String("booking_id", newBooking.BookingID))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(newBooking))
}

// getBooking godoc
// @Summary Get a booking by ID
// @Description Retrieves a booking with its extra items and derived finance fields
// @Tags bookings
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to retrieve booking"
// @Router /bookings/{bookingID} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logger.Error("Failed to get booking", slog.String("booking_id", bookingID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Description Retrieves a page of bookings ordered by start date descending
// @Tags bookings
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Opaque pagination cursor"
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list bookings"
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}
	var nextToken *string
	if raw := c.Query("nextToken"); raw != "" {
		nextToken = &raw
	}

	bookings, token, err := h.bookingService.ListBookings(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list bookings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListBookingsResponse(bookings, token))
}

// updateBookingDetails godoc
// @Summary Update booking details
// @Description Updates the non-finance fields of a booking
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Param   booking body dto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to update booking"
// @Router /bookings/{bookingID} [patch]
func (h *bookingHandler) updateBookingDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBookingDetails", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateBookingDetails(c.Request.Context(), bookingID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// applyFinanceEdit godoc
// @Summary Apply a finance edit to a booking
// @Description Applies one finance edit event and recomputes every derived field in the same request
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Param   edit body dto.FinanceEditRequest true "Finance edit"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to apply finance edit"
// @Router /bookings/{bookingID}/finance [post]
func (h *bookingHandler) applyFinanceEdit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	var req dto.FinanceEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyFinanceEdit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received finance edit", slog.String("booking_id", bookingID))

	booking, err := h.bookingService.ApplyFinanceEdit(c.Request.Context(), bookingID, req.ToFinanceEdit(), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to apply finance edit")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// getFinanceSummary godoc
// @Summary Get the commission breakdown of a booking
// @Description Derives the THB commission base and totals for the booking
// @Tags bookings
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to derive finance summary"
// @Router /bookings/{bookingID}/finance/summary [get]
func (h *bookingHandler) getFinanceSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	summary, err := h.bookingService.GetFinanceSummary(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to derive finance summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// deleteBooking godoc
// @Summary Delete a booking
// @Description Deletes a booking with its cabin allocations, extra items and payment ledger
// @Tags bookings
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to delete booking"
// @Router /bookings/{bookingID} [delete]
func (h *bookingHandler) deleteBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	if err := h.bookingService.DeleteBooking(c.Request.Context(), bookingID, actorID(c)); err != nil {
		respondServiceError(c, logger, err, "Failed to delete booking")
		return
	}

	logger.Info("Booking deleted", slog.String("booking_id", bookingID))
	c.Status(http.StatusNoContent)
}
