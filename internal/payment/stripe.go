package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// stripeClient talks to the payment provider's REST API directly:
// bearer auth, form-encoded bodies, JSON replies.
type stripeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewStripeClient creates a provider client. baseURL is injectable so
// tests can point it at a local server.
func NewStripeClient(apiKey, baseURL string) Provider {
	return &stripeClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateIntent authorizes a charge and returns the resulting intent.
func (c *stripeClient) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", req.Currency)
	form.Set("metadata[tripId]", req.TripID)
	form.Set("metadata[customerName]", req.CustomerName)
	form.Set("metadata[customerEmail]", req.CustomerEmail)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.do(httpReq)
}

// RetrieveIntent fetches the current state of an intent by id.
func (c *stripeClient) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/payment_intents/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.do(httpReq)
}

func (c *stripeClient) do(req *http.Request) (*Intent, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment provider error: status=%d message=%s",
			resp.StatusCode, providerErrorMessage(resp.Body))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &intent, nil
}

// providerErrorMessage extracts the provider's own error message from a
// failed response so logs carry it, without leaking the raw body shape
// to callers.
func providerErrorMessage(body io.Reader) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return "unreadable response body"
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Error.Message == "" {
		return strings.TrimSpace(string(raw))
	}
	return payload.Error.Message
}
