package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/polisure/polisure/internal/user/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repo struct {
	users *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{users: db.Collection(mongodb.CollectionUsers)}
}

func (r *repo) Insert(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) List(ctx context.Context, role string) ([]domain.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(role) + "$", Options: "i"}
	}

	cursor, err := r.users.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repo) UpdateByEmail(ctx context.Context, email string, fields map[string]any) (int64, error) {
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *repo) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error) {
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *repo) FindAgents(ctx context.Context, limit int64) ([]domain.User, error) {
	cursor, err := r.users.Find(ctx, bson.M{"role": domain.RoleAgent}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	agents := []domain.User{}
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *repo) FindAgentByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	filter := bson.M{
		"_id":  id,
		"role": primitive.Regex{Pattern: "^agent$", Options: "i"},
	}
	var agent domain.User
	err := r.users.FindOne(ctx, filter).Decode(&agent)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}
