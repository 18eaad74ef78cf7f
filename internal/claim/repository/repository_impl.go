package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/polisure/polisure/internal/claim/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repo struct {
	claims *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{claims: db.Collection(mongodb.CollectionClaims)}
}

func (r *repo) Insert(ctx context.Context, claim *domain.Claim) (primitive.ObjectID, error) {
	res, err := r.claims.InsertOne(ctx, claim)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *repo) List(ctx context.Context, filter domain.ListClaimsFilter) ([]domain.Claim, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.Email) + "$", Options: "i"}
	}
	if filter.ApplicationID != nil {
		query["applicationId"] = *filter.ApplicationID
	}

	cursor, err := r.claims.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	claims := []domain.Claim{}
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *repo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	res, err := r.claims.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
