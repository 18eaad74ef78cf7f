package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	Photo       string             `bson:"photo" json:"photo"`
	PolicyID    primitive.ObjectID `bson:"policyId" json:"policyId"`
	PolicyTitle string             `bson:"policyTitle" json:"policyTitle"`
	Rating      int                `bson:"rating" json:"rating"`
	Feedback    string             `bson:"feedback" json:"feedback"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateReviewRequest struct {
	Email       string
	Name        string
	Photo       string
	PolicyID    string
	PolicyTitle string
	Rating      int
	Feedback    string
}

type Service interface {
	Create(ctx context.Context, req CreateReviewRequest) (primitive.ObjectID, error)
	Latest(ctx context.Context) ([]Review, error)
}

type Repository interface {
	Insert(ctx context.Context, review *Review) (primitive.ObjectID, error)
	Latest(ctx context.Context, limit int64) ([]Review, error)
}

var (
	ErrMissingFields   = errors.New("review_fields_required")
	ErrInvalidPolicyID = errors.New("invalid_review_policy_id")
)
