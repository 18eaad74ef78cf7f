package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListApplicationsFilter struct {
	Email      string
	AgentID    *primitive.ObjectID
	AgentEmail string
}

type Repository interface {
	Insert(ctx context.Context, application *Application) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Application, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Application, error)
	List(ctx context.Context, filter ListApplicationsFilter) ([]Application, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error)
}
