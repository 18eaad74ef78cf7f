package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Insert(ctx context.Context, user *User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, role string) ([]User, error)
	UpdateByEmail(ctx context.Context, email string, fields map[string]any) (int64, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindAgents(ctx context.Context, limit int64) ([]User, error)
	FindAgentByID(ctx context.Context, id primitive.ObjectID) (*User, error)
}
