package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Claim snapshots coverage fields from its application at creation time.
// Nil coverage fields mark legacy rows created before the snapshot existed;
// those are enriched on read, never in storage.
type Claim struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ApplicationID  primitive.ObjectID `bson:"applicationId" json:"applicationId"`
	PolicyName     string             `bson:"policyName" json:"policyName"`
	Email          string             `bson:"email" json:"email"`
	Reason         string             `bson:"reason" json:"reason"`
	Status         Status             `bson:"status" json:"status"`
	CoverageAmount *float64           `bson:"coverageAmount" json:"coverageAmount"`
	TermDuration   *string            `bson:"termDuration" json:"termDuration"`
	PolicyType     *string            `bson:"policyType" json:"policyType"`
	FilePath       *string            `bson:"filePath" json:"filePath"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateClaimRequest struct {
	ApplicationID string
	PolicyName    string
	Email         string
	Reason        string
	FilePath      *string
}

type ListClaimsRequest struct {
	Email         string
	ApplicationID string
}

type Service interface {
	Create(ctx context.Context, req CreateClaimRequest) (primitive.ObjectID, error)
	List(ctx context.Context, req ListClaimsRequest) ([]Claim, error)
	SetStatus(ctx context.Context, id string, status string) error
}

var (
	ErrMissingFields        = errors.New("claim_fields_required")
	ErrInvalidID            = errors.New("invalid_claim_id")
	ErrInvalidApplicationID = errors.New("invalid_claim_application_id")
	ErrInvalidStatus        = errors.New("invalid_claim_status")
	ErrNotFound             = errors.New("claim_not_found")
	ErrApplicationNotFound  = errors.New("claim_application_not_found")
)
