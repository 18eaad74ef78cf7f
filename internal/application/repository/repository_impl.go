package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/polisure/polisure/internal/application/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repo struct {
	applications *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{applications: db.Collection(mongodb.CollectionApplications)}
}

func (r *repo) Insert(ctx context.Context, application *domain.Application) (primitive.ObjectID, error) {
	res, err := r.applications.InsertOne(ctx, application)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *repo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Application, error) {
	var application domain.Application
	err := r.applications.FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *repo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Application, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.applications.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	applications := []domain.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *repo) List(ctx context.Context, filter domain.ListApplicationsFilter) ([]domain.Application, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.Email) + "$", Options: "i"}
	}
	if filter.AgentID != nil {
		query["assignedAgent.id"] = *filter.AgentID
	}
	if filter.AgentEmail != "" {
		query["assignedAgent.email"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.AgentEmail) + "$", Options: "i"}
	}

	cursor, err := r.applications.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	applications := []domain.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *repo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	res, err := r.applications.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
