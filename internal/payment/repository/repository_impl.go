package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/polisure/polisure/internal/payment/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type repo struct {
	payments *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{payments: db.Collection(mongodb.CollectionPayments)}
}

func (r *repo) Insert(ctx context.Context, payment *domain.Payment) (primitive.ObjectID, error) {
	res, err := r.payments.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

// viewProjection flattens the joined application into the list shape.
// policyName falls back to the application's policyType when the title
// is absent.
func viewProjection() bson.M {
	return bson.M{
		"_id":            1,
		"transactionId":  "$paymentIntentId",
		"email":          "$userEmail",
		"policyName":     bson.M{"$ifNull": bson.A{"$application.policyTitle", "$application.policyType"}},
		"amountUSD":      1,
		"amountBDT":      1,
		"frequency":      1,
		"status":         "$stripe.status",
		"stripeAmount":   "$stripe.amount",
		"stripeCurrency": "$stripe.currency",
		"createdAt":      1,
	}
}

func applicationLookup() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         mongodb.CollectionApplications,
			"localField":   "applicationId",
			"foreignField": "_id",
			"as":           "application",
		}},
		{"$unwind": bson.M{"path": "$application", "preserveNullAndEmptyArrays": true}},
	}
}

func (r *repo) ListViews(ctx context.Context, filter domain.ListPaymentsFilter, skip, limit int64) ([]domain.PaymentView, int64, error) {
	match := bson.M{}
	if filter.Email != "" {
		match["userEmail"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.Email) + "$", Options: "i"}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"createdAt": -1}},
	}
	pipeline = append(pipeline, applicationLookup()...)
	pipeline = append(pipeline,
		bson.M{"$project": viewProjection()},
		bson.M{"$skip": skip},
		bson.M{"$limit": limit},
	)

	cursor, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	views := []domain.PaymentView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, 0, err
	}

	total, err := r.payments.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *repo) FindViewByID(ctx context.Context, id primitive.ObjectID) (*domain.PaymentDetail, error) {
	projection := viewProjection()
	projection["rawStripe"] = "$stripe"
	projection["application"] = 1

	pipeline := []bson.M{{"$match": bson.M{"_id": id}}}
	pipeline = append(pipeline, applicationLookup()...)
	pipeline = append(pipeline, bson.M{"$project": projection})

	cursor, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	details := []domain.PaymentDetail{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *repo) Summary(ctx context.Context) (domain.Summary, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":      nil,
			"totalUSD": bson.M{"$sum": "$amountUSD"},
			"totalBDT": bson.M{"$sum": "$amountBDT"},
			"count":    bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.Summary{}, err
	}
	rows := []struct {
		TotalUSD float64 `bson:"totalUSD"`
		TotalBDT float64 `bson:"totalBDT"`
		Count    int64   `bson:"count"`
	}{}
	if err := cursor.All(ctx, &rows); err != nil {
		return domain.Summary{}, err
	}
	if len(rows) == 0 {
		return domain.Summary{}, nil
	}
	return domain.Summary{
		TotalUSD: rows[0].TotalUSD,
		TotalBDT: rows[0].TotalBDT,
		Count:    rows[0].Count,
	}, nil
}
