package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/polisure/polisure/internal/policy/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repo struct {
	policies *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{policies: db.Collection(mongodb.CollectionPolicies)}
}

func (r *repo) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.policies.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *repo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Policy, error) {
	var policy domain.Policy
	err := r.policies.FindOne(ctx, bson.M{"_id": id}).Decode(&policy)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *repo) List(ctx context.Context, filter domain.ListPoliciesFilter, skip, limit int64) ([]domain.Policy, int64, error) {
	query := bson.M{}
	if filter.Category != "" && filter.Category != "All" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}

	total, err := r.policies.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.policies.Find(ctx, query, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	policies := []domain.Policy{}
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, 0, err
	}
	return policies, total, nil
}

func (r *repo) Update(ctx context.Context, id primitive.ObjectID, doc bson.M) (int64, error) {
	res, err := r.policies.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.policies.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *repo) IncrementPopularity(ctx context.Context, policyRef string) error {
	filter := bson.M{"id": policyRef}
	if oid, err := primitive.ObjectIDFromHex(policyRef); err == nil {
		filter = bson.M{"_id": oid}
	}
	_, err := r.policies.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"popularity": 1}})
	return err
}
