package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
}

type Service interface {
	Subscribe(ctx context.Context, name, email string) error
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Subscriber, error)
	Insert(ctx context.Context, subscriber *Subscriber) (primitive.ObjectID, error)
}

var (
	ErrMissingFields     = errors.New("newsletter_fields_required")
	ErrAlreadySubscribed = errors.New("newsletter_already_subscribed")
)
