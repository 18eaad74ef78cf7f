package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the application lifecycle state.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus validates a client-supplied status string.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

type AssignedAgent struct {
	ID    primitive.ObjectID `bson:"id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

type PaymentInfo struct {
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	AmountUSD       float64   `bson:"amountUSD" json:"amountUSD"`
	AmountBDT       float64   `bson:"amountBDT" json:"amountBDT"`
	StripeCurrency  string    `bson:"stripeCurrency" json:"stripeCurrency"`
	StripeAmount    int64     `bson:"stripeAmount" json:"stripeAmount"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

type Application struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName          string             `bson:"fullName" json:"fullName"`
	Email             string             `bson:"email" json:"email"`
	PolicyID          string             `bson:"policyId,omitempty" json:"policyId,omitempty"`
	PolicyTitle       string             `bson:"policyTitle,omitempty" json:"policyTitle,omitempty"`
	Status            Status             `bson:"status" json:"status"`
	RejectionFeedback string             `bson:"rejectionFeedback,omitempty" json:"rejectionFeedback,omitempty"`
	AssignedAgent     *AssignedAgent     `bson:"assignedAgent,omitempty" json:"assignedAgent,omitempty"`
	PaymentStatus     string             `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	Frequency         string             `bson:"frequency,omitempty" json:"frequency,omitempty"`
	ActivatedAt       *time.Time         `bson:"activatedAt,omitempty" json:"activatedAt,omitempty"`
	PaymentInfo       *PaymentInfo       `bson:"paymentInfo,omitempty" json:"paymentInfo,omitempty"`
	CoverageAmount    *float64           `bson:"coverageAmount,omitempty" json:"coverageAmount,omitempty"`
	TermDuration      *string            `bson:"termDuration,omitempty" json:"termDuration,omitempty"`
	PolicyType        *string            `bson:"policyType,omitempty" json:"policyType,omitempty"`
	SubmittedAt       time.Time          `bson:"submittedAt" json:"submittedAt"`
}
