package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListPaymentsFilter struct {
	Email string
}

type Repository interface {
	Insert(ctx context.Context, payment *Payment) (primitive.ObjectID, error)
	ListViews(ctx context.Context, filter ListPaymentsFilter, skip, limit int64) ([]PaymentView, int64, error)
	FindViewByID(ctx context.Context, id primitive.ObjectID) (*PaymentDetail, error)
	Summary(ctx context.Context) (Summary, error)
}
