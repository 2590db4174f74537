// Package booking sequences the booking flow: verify the trip exists,
// authorize payment with the external provider, flip the booked flag,
// hand back a confirmation id. Payment failures are surfaced distinctly
// from an unknown trip.
package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"ai-trip-planner/internal/logger"
	"ai-trip-planner/internal/payment"
	"ai-trip-planner/internal/trip"
)

// MinIntentAmount is the provider's minimum charge in minor units (₹0.50).
const MinIntentAmount = 50

// ErrAmountTooSmall is returned when a payment intent is requested for
// less than the provider's minimum charge.
var ErrAmountTooSmall = errors.New("amount must be at least ₹0.50")

// ErrPaymentNotCompleted is returned when a payment is confirmed before
// the provider reports it as succeeded.
var ErrPaymentNotCompleted = errors.New("payment has not been successfully processed")

// Customer identifies the paying traveller for provider correlation.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// PaymentInfo is what the booking endpoint receives from the client.
// TotalAmount is in whole rupees.
type PaymentInfo struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	TotalAmount float64 `json:"totalAmount"`
}

// IntentParams describes a requested payment intent. Amount is in minor
// currency units, as on the provider's wire.
type IntentParams struct {
	Amount   int64
	Currency string
	TripID   string
	Customer Customer
}

// Result is a completed booking.
type Result struct {
	BookingID string
	Trip      trip.Trip
}

// Service is the booking orchestrator.
type Service struct {
	store    *trip.Store
	payments payment.Provider
	log      *logger.Logger
}

// NewService creates a booking Service around the given store and
// payment provider.
func NewService(store *trip.Store, payments payment.Provider, log *logger.Logger) *Service {
	return &Service{store: store, payments: payments, log: log}
}

// Book marks the identified trip as booked after authorizing payment.
// Returns trip.ErrNotFound for an unknown id. A declined or failed
// authorization leaves the trip unbooked. When no provider credential
// is configured the charge is skipped and the booking proceeds, which
// matches the behavior of a deployment without payments enabled.
func (s *Service) Book(ctx context.Context, tripID string, info PaymentInfo) (Result, error) {
	if _, ok := s.store.Get(tripID); !ok {
		return Result{}, trip.ErrNotFound
	}

	if info.TotalAmount > 0 {
		_, err := s.payments.CreateIntent(ctx, payment.IntentRequest{
			Amount:        int64(math.Round(info.TotalAmount * 100)),
			Currency:      "inr",
			TripID:        tripID,
			CustomerName:  info.FirstName + " " + info.LastName,
			CustomerEmail: info.Email,
		})
		switch {
		case errors.Is(err, payment.ErrNotConfigured):
			s.log.Warn("payment provider not configured, booking without charge", "tripId", tripID)
		case err != nil:
			return Result{}, fmt.Errorf("payment authorization failed: %w", err)
		}
	}

	booked, ok := s.store.MarkBooked(tripID)
	if !ok {
		return Result{}, trip.ErrNotFound
	}

	result := Result{
		BookingID: fmt.Sprintf("TRP%d", time.Now().UnixMilli()),
		Trip:      booked,
	}
	s.log.Info("trip booked", "tripId", tripID, "bookingId", result.BookingID)
	return result, nil
}

// CreateIntent validates the requested amount and delegates to the
// provider. Currency defaults to INR.
func (s *Service) CreateIntent(ctx context.Context, params IntentParams) (*payment.Intent, error) {
	if params.Amount < MinIntentAmount {
		return nil, ErrAmountTooSmall
	}
	currency := params.Currency
	if currency == "" {
		currency = "inr"
	}

	intent, err := s.payments.CreateIntent(ctx, payment.IntentRequest{
		Amount:        params.Amount,
		Currency:      currency,
		TripID:        params.TripID,
		CustomerName:  params.Customer.FirstName + " " + params.Customer.LastName,
		CustomerEmail: params.Customer.Email,
	})
	if err != nil {
		return nil, err
	}
	return intent, nil
}

// ConfirmPayment verifies the provider reports the intent as succeeded
// and, when a trip id was supplied, marks that trip booked.
func (s *Service) ConfirmPayment(ctx context.Context, intentID, tripID string) (*payment.Intent, error) {
	intent, err := s.payments.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != payment.StatusSucceeded {
		return nil, ErrPaymentNotCompleted
	}

	if tripID != "" {
		if _, ok := s.store.MarkBooked(tripID); !ok {
			s.log.Warn("confirmed payment references unknown trip", "tripId", tripID, "paymentIntentId", intentID)
		} else {
			s.log.Info("trip booked via payment confirmation", "tripId", tripID, "paymentIntentId", intentID)
		}
	}

	return intent, nil
}
