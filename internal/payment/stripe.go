package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// StripeClient talks to the Stripe PaymentIntents API.
type StripeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewStripeClient() *StripeClient {
	return &StripeClient{
		apiKey:  os.Getenv("STRIPE_SECRET_KEY"),
		baseURL: "https://api.stripe.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewStripeClientWithBaseURL exists for tests against a fake server.
func NewStripeClientWithBaseURL(apiKey, baseURL string) *StripeClient {
	return &StripeClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateIntent registers a payment intent and returns its client secret.
// The processor's own error message is surfaced verbatim when present.
func (s *StripeClient) CreateIntent(
	ctx context.Context,
	amountMinor int64,
	currency string,
) (string, error) {

	if s.apiKey == "" {
		return "", errors.New("missing STRIPE_SECRET_KEY")
	}
	if amountMinor <= 0 {
		return "", errors.New("payment amount must be positive")
	}
	if currency == "" {
		currency = "usd"
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil &&
			failure.Error.Message != "" {
			return "", errors.New(failure.Error.Message)
		}
		return "", fmt.Errorf("payment api error: status %d", resp.StatusCode)
	}

	var intent struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(raw, &intent); err != nil {
		return "", err
	}

	if intent.ClientSecret == "" {
		return "", errors.New("payment api returned no client secret")
	}

	return intent.ClientSecret, nil
}
