package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/polisure/polisure/internal/newsletter/domain"
	"github.com/polisure/polisure/internal/newsletter/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeSubscriberRepo struct {
	byEmail map[string]*domain.Subscriber
}

func (r *fakeSubscriberRepo) FindByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	return r.byEmail[email], nil
}

func (r *fakeSubscriberRepo) Insert(ctx context.Context, subscriber *domain.Subscriber) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	subscriber.ID = id
	r.byEmail[subscriber.Email] = subscriber
	return id, nil
}

func newService(repo domain.Repository) domain.Service {
	return service.New(service.Params{Log: zap.NewNop(), Repo: repo})
}

func TestSubscribeRequiresNameAndEmail(t *testing.T) {
	svc := newService(&fakeSubscriberRepo{byEmail: map[string]*domain.Subscriber{}})

	if err := svc.Subscribe(context.Background(), "  ", "a@b.c"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if err := svc.Subscribe(context.Background(), "Ana", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestSubscribeRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeSubscriberRepo{byEmail: map[string]*domain.Subscriber{}}
	svc := newService(repo)

	if err := svc.Subscribe(context.Background(), "Ana", "a@b.c"); err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	if repo.byEmail["a@b.c"].SubscribedAt.IsZero() {
		t.Fatalf("subscribedAt must be set")
	}

	err := svc.Subscribe(context.Background(), "Ana again", "a@b.c")
	if !errors.Is(err, domain.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}
