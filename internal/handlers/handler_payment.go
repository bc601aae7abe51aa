package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/dto"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// paymentHandler handles HTTP requests against the payment ledger.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers routes related to the payment ledger.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
		payments.POST("/:paymentID/paid", h.markPaid)
		payments.POST("/:paymentID/receipt", h.syncReceipt)
		payments.POST("/:paymentID/flag", h.flagAccountingAction)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends an entry to a booking's or cabin's payment ledger and refreshes the owner's payment status
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Booking or cabin not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record payment", slog.String("booking_id", req.BookingID))

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List the payment ledger of a booking or cabin
// @Tags payments
// @Produce  json
// @Param   ownerID query string true "Booking or cabin ID the ledger belongs to"
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Missing ownerID"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Query("ownerID")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerID query parameter is required"})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// markPaid godoc
// @Summary Mark a payment as paid
// @Description Sets the paid date on a ledger entry and refreshes the owner's payment status
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Param   paid body dto.MarkPaymentPaidRequest true "Paid date"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to mark payment paid"
// @Router /payments/{paymentID}/paid [post]
func (h *paymentHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.MarkPaymentPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MarkPaymentPaid", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.MarkPaymentPaid(c.Request.Context(), paymentID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to mark payment paid")
		return
	}

	logger.Info("Payment marked paid", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// syncReceipt godoc
// @Summary Link a payment to its receipt
// @Description Records the receipt id on a ledger entry and clears the accounting-action flag
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Param   receipt body dto.SyncReceiptRequest true "Receipt reference"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to sync receipt"
// @Router /payments/{paymentID}/receipt [post]
func (h *paymentHandler) syncReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.SyncReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SyncReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.MarkSyncedToReceipt(c.Request.Context(), paymentID, req.ReceiptID, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sync receipt")
		return
	}

	logger.Info("Payment synced to receipt", slog.String("payment_id", paymentID), slog.String("receipt_id", req.ReceiptID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// flagAccountingAction godoc
// @Summary Flag a payment for accounting review
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to flag payment"
// @Router /payments/{paymentID}/flag [post]
func (h *paymentHandler) flagAccountingAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	payment, err := h.paymentService.FlagAccountingAction(c.Request.Context(), paymentID, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to flag payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
