package repository

import (
	"context"
	"errors"

	"github.com/polisure/polisure/internal/newsletter/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type repo struct {
	subscribers *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{subscribers: db.Collection(mongodb.CollectionNewsletter)}
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var subscriber domain.Subscriber
	err := r.subscribers.FindOne(ctx, bson.M{"email": email}).Decode(&subscriber)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *repo) Insert(ctx context.Context, subscriber *domain.Subscriber) (primitive.ObjectID, error) {
	res, err := r.subscribers.InsertOne(ctx, subscriber)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}
