package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentSendsFormAndAuth(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"amount":                  r.PostForm.Get("amount"),
			"currency":                r.PostForm.Get("currency"),
			"metadata[tripId]":        r.PostForm.Get("metadata[tripId]"),
			"metadata[customerName]":  r.PostForm.Get("metadata[customerName]"),
			"metadata[customerEmail]": r.PostForm.Get("metadata[customerEmail]"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pi_123", "client_secret": "pi_123_secret", "status": "requires_payment_method"}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc", srv.URL)
	intent, err := client.CreateIntent(context.Background(), IntentRequest{
		Amount:        250000,
		Currency:      "inr",
		TripID:        "trip-1",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "/payment_intents", gotPath)
	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "250000", gotForm["amount"])
	assert.Equal(t, "inr", gotForm["currency"])
	assert.Equal(t, "trip-1", gotForm["metadata[tripId]"])
	assert.Equal(t, "Asha Rao", gotForm["metadata[customerName]"])
	assert.Equal(t, "asha@example.com", gotForm["metadata[customerEmail]"])

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
}

func TestRetrieveIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payment_intents/pi_456", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pi_456", "status": "succeeded", "amount_received": 250000}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc", srv.URL)
	intent, err := client.RetrieveIntent(context.Background(), "pi_456")
	require.NoError(t, err)

	assert.Equal(t, StatusSucceeded, intent.Status)
	assert.Equal(t, int64(250000), intent.AmountReceived)
}

func TestProviderErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc", srv.URL)
	_, err := client.CreateIntent(context.Background(), IntentRequest{Amount: 500, Currency: "inr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
	assert.Contains(t, err.Error(), "status=402")
}

func TestUnconfiguredClient(t *testing.T) {
	client := NewStripeClient("", "https://api.stripe.com/v1")

	_, err := client.CreateIntent(context.Background(), IntentRequest{Amount: 500})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.RetrieveIntent(context.Background(), "pi_1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
