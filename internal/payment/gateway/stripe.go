package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/polisure/polisure/internal/payment/domain"
)

const defaultBaseURL = "https://api.stripe.com"

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type stripeErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// StripeGateway drives the Stripe REST API directly over form-encoded
// requests. No SDK, the surface used here is two endpoints.
type StripeGateway struct {
	apiKey    string
	accountID string
	baseURL   string
	client    *http.Client
}

type Option func(*StripeGateway)

// WithBaseURL points the gateway at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(g *StripeGateway) {
		g.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func NewStripeGateway(apiKey string, accountID string, opts ...Option) *StripeGateway {
	g := &StripeGateway{
		apiKey:    strings.TrimSpace(apiKey),
		accountID: strings.TrimSpace(accountID),
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: 12 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *StripeGateway) CreateIntent(ctx context.Context, params domain.CreateIntentParams) (domain.Intent, error) {
	currency := strings.ToLower(strings.TrimSpace(params.Currency))
	if currency == "" {
		currency = "usd"
	}

	values := url.Values{}
	values.Set("amount", strconv.FormatInt(params.AmountCents, 10))
	values.Set("currency", currency)
	values.Set("description", params.Description)
	values.Set("metadata[applicationId]", params.ApplicationID)
	values.Set("metadata[amountUSD]", strconv.FormatFloat(params.AmountUSD, 'f', -1, 64))
	values.Set("metadata[amountBDT]", strconv.FormatFloat(params.AmountBDT, 'f', -1, 64))
	values.Set("metadata[frequency]", params.Frequency)

	return g.doRequest(ctx, http.MethodPost, "/v1/payment_intents", values)
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (domain.Intent, error) {
	return g.doRequest(ctx, http.MethodGet, "/v1/payment_intents/"+url.PathEscape(intentID), nil)
}

func (g *StripeGateway) doRequest(ctx context.Context, method string, path string, values url.Values) (domain.Intent, error) {
	if g.apiKey == "" {
		return domain.Intent{}, domain.ErrGatewayUnavailable
	}

	body := ""
	if values != nil {
		body = values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, strings.NewReader(body))
	if err != nil {
		return domain.Intent{}, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if values != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if g.accountID != "" {
		req.Header.Set("Stripe-Account", g.accountID)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.Intent{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var stripeErr stripeErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&stripeErr); err != nil {
			return domain.Intent{}, errors.New("stripe_request_failed")
		}
		message := strings.TrimSpace(stripeErr.Error.Message)
		if message == "" {
			message = "stripe_request_failed"
		}
		return domain.Intent{}, errors.New(message)
	}

	var intent stripeIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return domain.Intent{}, err
	}
	if intent.ID == "" {
		return domain.Intent{}, errors.New("stripe_response_invalid")
	}
	return domain.Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
		Currency:     intent.Currency,
		Amount:       intent.Amount,
	}, nil
}
