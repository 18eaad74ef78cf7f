package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListClaimsFilter struct {
	Email         string
	ApplicationID *primitive.ObjectID
}

type Repository interface {
	Insert(ctx context.Context, claim *Claim) (primitive.ObjectID, error)
	List(ctx context.Context, filter ListClaimsFilter) ([]Claim, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error)
}
