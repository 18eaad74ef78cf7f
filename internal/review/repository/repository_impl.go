package repository

import (
	"context"
	"errors"

	"github.com/polisure/polisure/internal/review/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repo struct {
	reviews *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{reviews: db.Collection(mongodb.CollectionReviews)}
}

func (r *repo) Insert(ctx context.Context, review *domain.Review) (primitive.ObjectID, error) {
	res, err := r.reviews.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *repo) Latest(ctx context.Context, limit int64) ([]domain.Review, error) {
	cursor, err := r.reviews.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
