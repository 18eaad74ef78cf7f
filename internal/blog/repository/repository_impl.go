package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/polisure/polisure/internal/blog/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repo struct {
	blogs *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{blogs: db.Collection(mongodb.CollectionBlogs)}
}

func (r *repo) Insert(ctx context.Context, blog *domain.Blog) (primitive.ObjectID, error) {
	res, err := r.blogs.InsertOne(ctx, blog)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *repo) List(ctx context.Context, authorEmail string) ([]domain.Blog, error) {
	query := bson.M{}
	if authorEmail != "" {
		query["authorEmail"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(authorEmail) + "$", Options: "i"}
	}

	cursor, err := r.blogs.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	blogs := []domain.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *repo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	res, err := r.blogs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.blogs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *repo) IncrementVisit(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.blogs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"totalVisit": 1}})
	return err
}
