package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-trip-planner/internal/booking"
	"ai-trip-planner/internal/logger"
)

// PaymentHandler serves the payment-intent endpoints.
type PaymentHandler struct {
	bookings *booking.Service
	log      *logger.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(bookings *booking.Service, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{bookings: bookings, log: log}
}

// CreateIntent handles POST /api/payments/create-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var body struct {
		Amount       int64            `json:"amount"`
		Currency     string           `json:"currency"`
		TripID       string           `json:"tripId"`
		CustomerInfo booking.Customer `json:"customerInfo"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid amount",
			"message": "Amount must be at least ₹0.50",
		})
		return
	}

	intent, err := h.bookings.CreateIntent(c.Request.Context(), booking.IntentParams{
		Amount:   body.Amount,
		Currency: body.Currency,
		TripID:   body.TripID,
		Customer: body.CustomerInfo,
	})
	if err != nil {
		if errors.Is(err, booking.ErrAmountTooSmall) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid amount",
				"message": "Amount must be at least ₹0.50",
			})
			return
		}
		h.log.Error("payment intent creation failed", "tripId", body.TripID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Payment setup failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_secret":     intent.ClientSecret,
		"payment_intent_id": intent.ID,
	})
}

// ConfirmPayment handles POST /api/payments/confirm.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var body struct {
		PaymentIntentID string `json:"payment_intent_id"`
		TripID          string `json:"tripId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PaymentIntentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": "payment_intent_id is required",
		})
		return
	}

	intent, err := h.bookings.ConfirmPayment(c.Request.Context(), body.PaymentIntentID, body.TripID)
	if err != nil {
		if errors.Is(err, booking.ErrPaymentNotCompleted) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Payment not completed",
				"message": "Payment has not been successfully processed",
			})
			return
		}
		h.log.Error("payment confirmation failed", "paymentIntentId", body.PaymentIntentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Payment confirmation failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"payment_status":  intent.Status,
		"amount_received": intent.AmountReceived,
	})
}
