// Package payment integrates the Stripe-style payment-intent provider.
// Only the request/response shape of the provider is modeled here; the
// booking orchestrator owns the sequencing around it.
package payment

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no provider credential is present.
// Distinct from a call that was attempted and failed.
var ErrNotConfigured = errors.New("payment provider unavailable - STRIPE_SECRET_KEY not configured")

// IntentRequest describes a charge to authorize. Amount is in minor
// currency units (paise).
type IntentRequest struct {
	Amount        int64
	Currency      string
	TripID        string
	CustomerName  string
	CustomerEmail string
}

// Intent is the provider's view of a payment authorization.
type Intent struct {
	ID             string `json:"id"`
	ClientSecret   string `json:"client_secret"`
	Status         string `json:"status"`
	AmountReceived int64  `json:"amount_received"`
}

// StatusSucceeded is the provider status confirming a completed payment.
const StatusSucceeded = "succeeded"

// Provider abstracts the external payment capability so the booking
// orchestrator and its tests do not touch the network.
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
