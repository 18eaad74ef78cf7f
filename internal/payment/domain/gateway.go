package domain

import "context"

// Intent is the gateway-side view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Currency     string
	Amount       int64
}

type CreateIntentParams struct {
	AmountCents   int64
	Currency      string
	Description   string
	ApplicationID string
	AmountUSD     float64
	AmountBDT     float64
	Frequency     string
}

// Gateway abstracts the card processor. The production implementation
// talks to the Stripe REST API.
type Gateway interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (Intent, error)
}
