package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListPoliciesFilter struct {
	Category string
	Search   string
}

type Repository interface {
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Policy, error)
	List(ctx context.Context, filter ListPoliciesFilter, skip, limit int64) ([]Policy, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, doc bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)

	// IncrementPopularity bumps the popularity counter of the policy the
	// given reference points at. The reference may be an ObjectID hex or a
	// legacy plain string id.
	IncrementPopularity(ctx context.Context, policyRef string) error
}
