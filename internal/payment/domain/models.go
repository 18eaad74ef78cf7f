package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GatewaySnapshot is the verbatim payment intent state captured at
// confirmation time. It is stored under the "stripe" key.
type GatewaySnapshot struct {
	ID       string `bson:"id" json:"id"`
	Amount   int64  `bson:"amount" json:"amount"`
	Currency string `bson:"currency" json:"currency"`
	Status   string `bson:"status" json:"status"`
}

type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ApplicationID   primitive.ObjectID `bson:"applicationId" json:"applicationId"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	PaymentIntentID string             `bson:"paymentIntentId" json:"paymentIntentId"`
	AmountUSD       float64            `bson:"amountUSD" json:"amountUSD"`
	AmountBDT       float64            `bson:"amountBDT" json:"amountBDT"`
	Frequency       string             `bson:"frequency" json:"frequency"`
	Stripe          GatewaySnapshot    `bson:"stripe" json:"stripe"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentView is the list projection joined against the applications
// collection. PolicyName is nil when the parent application is gone.
type PaymentView struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	TransactionID  string             `bson:"transactionId" json:"transactionId"`
	Email          string             `bson:"email" json:"email"`
	PolicyName     *string            `bson:"policyName" json:"policyName"`
	AmountUSD      float64            `bson:"amountUSD" json:"amountUSD"`
	AmountBDT      float64            `bson:"amountBDT" json:"amountBDT"`
	Frequency      string             `bson:"frequency" json:"frequency"`
	Status         string             `bson:"status" json:"status"`
	StripeAmount   int64              `bson:"stripeAmount" json:"stripeAmount"`
	StripeCurrency string             `bson:"stripeCurrency" json:"stripeCurrency"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentDetail extends the list projection with the raw gateway
// snapshot and the joined application document.
type PaymentDetail struct {
	PaymentView `bson:",inline"`
	RawStripe   GatewaySnapshot `bson:"rawStripe" json:"rawStripe"`
	Application bson.M          `bson:"application,omitempty" json:"application,omitempty"`
}

type Summary struct {
	TotalUSD float64 `json:"totalUSD"`
	TotalBDT float64 `json:"totalBDT"`
	Count    int64   `json:"count"`
}

type CreateIntentRequest struct {
	ApplicationID  string
	AmountUSDCents int64
	Currency       string
	AmountUSD      float64
	AmountBDT      float64
	Frequency      string
}

type ConfirmPaymentRequest struct {
	ApplicationID   string
	PaymentIntentID string
	AmountUSD       float64
	AmountBDT       float64
	Frequency       string
	Status          string
}

type ListPaymentsRequest struct {
	Email string
	Page  int64
	Limit int64
}

type ListPaymentsResponse struct {
	Total int64         `json:"total"`
	Page  int64         `json:"page"`
	Limit int64         `json:"limit"`
	Data  []PaymentView `json:"data"`
}

type Service interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (string, error)
	Confirm(ctx context.Context, req ConfirmPaymentRequest) error
	List(ctx context.Context, req ListPaymentsRequest) (ListPaymentsResponse, error)
	GetByID(ctx context.Context, id string) (PaymentDetail, error)
	Summary(ctx context.Context) (Summary, error)
}

var (
	ErrMissingFields          = errors.New("payment_fields_required")
	ErrInvalidID              = errors.New("invalid_payment_id")
	ErrInvalidApplicationID   = errors.New("invalid_payment_application_id")
	ErrApplicationNotFound    = errors.New("payment_application_not_found")
	ErrApplicationNotApproved = errors.New("application_not_approved")
	ErrPaymentNotVerified     = errors.New("payment_not_verified")
	ErrGatewayUnavailable     = errors.New("payment_gateway_unavailable")
	ErrNotFound               = errors.New("payment_not_found")
)
