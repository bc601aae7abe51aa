package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/dto"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService: rs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.getRate)
		rates.POST("", h.createManualRate)
	}
}

// getRate godoc
// @Summary Get the THB rate for a currency
// @Description Returns the stored rate for the currency on the given date, fetching it from the external provider when missing
// @Tags exchange-rates
// @Produce  json
// @Param   currency query string true "Currency code (e.g. USD)"
// @Param   date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 503 {object} map[string]string "Rate unavailable"
// @Failure 500 {object} map[string]string "Failed to get exchange rate"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency := c.Query("currency")
	if currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency query parameter is required"})
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	rate, err := h.rateService.GetRate(c.Request.Context(), currency, date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// createManualRate godoc
// @Summary Enter a manual exchange rate
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Duplicate rate"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createManualRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateManualRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.rateService.CreateManualRate(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Manual exchange rate created", slog.String("currency", rate.CurrencyCode), slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}
