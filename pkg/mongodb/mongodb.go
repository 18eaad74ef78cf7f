package mongodb

import (
	"context"
	"time"

	"github.com/polisure/polisure/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Collection names used across the service.
const (
	CollectionUsers        = "users"
	CollectionPolicies     = "policies"
	CollectionApplications = "applications"
	CollectionClaims       = "claims"
	CollectionReviews      = "reviews"
	CollectionBlogs        = "blogs"
	CollectionPayments     = "payments"
	CollectionNewsletter   = "newsletterSubscribers"
)

var Module = fx.Module("mongodb",
	fx.Provide(NewClient),
	fx.Provide(NewDatabase),
	fx.Invoke(ensureIndexes),
)

// NewClient connects to MongoDB and registers lifecycle hooks for ping
// on start and disconnect on stop.
func NewClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return err
			}
			log.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

func NewDatabase(client *mongo.Client, cfg config.Config) *mongo.Database {
	return client.Database(cfg.MongoDatabase)
}

// ensureIndexes creates the lookup indexes best-effort; index failures are
// logged and never block startup.
func ensureIndexes(lc fx.Lifecycle, db *mongo.Database, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			indexes := []struct {
				collection string
				keys       bson.D
			}{
				{CollectionApplications, bson.D{{Key: "email", Value: 1}}},
				{CollectionClaims, bson.D{{Key: "email", Value: 1}}},
				{CollectionClaims, bson.D{{Key: "applicationId", Value: 1}}},
			}
			for _, idx := range indexes {
				_, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys})
				if err != nil {
					log.Warn("create index failed",
						zap.String("collection", idx.collection),
						zap.Error(err),
					)
				}
			}
			return nil
		},
	})
}
