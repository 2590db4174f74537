// Package handler implements the gin HTTP handlers of the API. Handlers
// translate between wire shapes and the domain services; the error
// taxonomy maps onto status codes here and nowhere else.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ai-trip-planner/internal/booking"
	"ai-trip-planner/internal/itinerary"
	"ai-trip-planner/internal/logger"
	"ai-trip-planner/internal/trip"
)

// TripHandler serves the trip lifecycle: generation, lookup, listing, booking.
type TripHandler struct {
	store           *trip.Store
	generator       *itinerary.Generator
	bookings        *booking.Service
	generateTimeout time.Duration
	log             *logger.Logger
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(store *trip.Store, generator *itinerary.Generator, bookings *booking.Service, generateTimeout time.Duration, log *logger.Logger) *TripHandler {
	return &TripHandler{
		store:           store,
		generator:       generator,
		bookings:        bookings,
		generateTimeout: generateTimeout,
		log:             log,
	}
}

// GenerateTrip handles POST /api/trips/generate.
//
// Availability is checked before anything is stored, so an unconfigured
// deployment never accumulates itinerary-less trip records.
func (h *TripHandler) GenerateTrip(c *gin.Context) {
	if !h.generator.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "AI service unavailable",
			"message": "The AI service is currently not available. Please try again later.",
		})
		return
	}

	var prefs trip.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid trip preferences",
			"details": decodeErrorDetails(err),
		})
		return
	}

	if fieldErrs := trip.ValidatePreferences(prefs); fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid trip preferences",
			"details": fieldErrs,
		})
		return
	}

	created := h.store.Create(prefs)
	h.log.Info("trip record created", "tripId", created.ID, "destination", prefs.Destination)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.generateTimeout)
	defer cancel()

	generated, err := h.generator.Generate(ctx, prefs)
	if err != nil {
		h.log.Error("itinerary generation failed", "tripId", created.ID, "error", err)
		if errors.Is(err, itinerary.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "AI service unavailable",
				"message": "The AI service is currently not available. Please try again later.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate itinerary",
			"message": err.Error(),
		})
		return
	}

	h.store.AttachItinerary(created.ID, generated)

	c.JSON(http.StatusOK, gin.H{
		"tripId":    created.ID,
		"itinerary": generated,
	})
}

// GetTrip handles GET /api/trips/:id.
func (h *TripHandler) GetTrip(c *gin.Context) {
	t, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListTrips handles GET /api/trips. Newest first.
func (h *TripHandler) ListTrips(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListAll())
}

// BookTrip handles POST /api/trips/:id/book.
func (h *TripHandler) BookTrip(c *gin.Context) {
	var body struct {
		PaymentInfo booking.PaymentInfo `json:"paymentInfo"`
	}
	// A missing or empty body books without a charge, matching clients
	// that settle payment through the intent endpoints instead.
	_ = c.ShouldBindJSON(&body)

	result, err := h.bookings.Book(c.Request.Context(), c.Param("id"), body.PaymentInfo)
	if err != nil {
		if errors.Is(err, trip.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		h.log.Error("booking failed", "tripId", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to book trip",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"bookingId": result.BookingID,
		"trip":      result.Trip,
	})
}

// decodeErrorDetails translates a JSON decode failure into field-level
// details where possible, so a non-numeric budget reads as a budget
// problem rather than an opaque bad-request.
func decodeErrorDetails(err error) []trip.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []trip.FieldError{{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
		}}
	}
	return []trip.FieldError{{Field: "body", Message: "request body must be a valid JSON object"}}
}
