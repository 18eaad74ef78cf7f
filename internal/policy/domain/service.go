package domain

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service interface {
	List(ctx context.Context, req ListPoliciesRequest) (ListPoliciesResponse, error)
	GetByID(ctx context.Context, id string) (Policy, error)
	Create(ctx context.Context, req BuildPolicyRequest) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, req BuildPolicyRequest) error
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidID = errors.New("invalid_policy_id")
	ErrNotFound  = errors.New("policy_not_found")
)
