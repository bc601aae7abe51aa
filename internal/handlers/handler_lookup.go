package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// lookupHandler serves autocomplete lookups for the booking form.
type lookupHandler struct {
	lookupService portssvc.LookupSvc
}

func newLookupHandler(ls portssvc.LookupSvc) *lookupHandler {
	return &lookupHandler{
		lookupService: ls,
	}
}

// registerLookupRoutes registers the lookup routes.
func registerLookupRoutes(rg *gin.RouterGroup, lookupService portssvc.LookupSvc) {
	h := newLookupHandler(lookupService)

	lookups := rg.Group("/lookups")
	{
		lookups.GET("/extras", h.extrasLookups)
	}
}

// extrasLookups godoc
// @Summary List known extra-item names for a category
// @Tags lookups
// @Produce  json
// @Param   category query string true "Lookup category (e.g. transfer, activity)"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string "Missing category"
// @Failure 500 {object} map[string]string "Failed to list lookups"
// @Router /lookups/extras [get]
func (h *lookupHandler) extrasLookups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query parameter is required"})
		return
	}

	names, err := h.lookupService.ExtrasLookups(c.Request.Context(), category)
	if err != nil {
		logger.Error("Failed to list extras lookups", slog.String("category", category), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list lookups"})
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, names)
}
