package service

import (
	"context"
	"strings"
	"time"

	"github.com/polisure/polisure/internal/newsletter/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("newsletter.service"),
		repo: p.Repo,
	}
}

// Subscribe rejects duplicate emails with an exact-match lookup. There
// is no unique index behind it, concurrent subscribes can both pass the
// check.
func (s *Service) Subscribe(ctx context.Context, name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return domain.ErrMissingFields
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrAlreadySubscribed
	}

	_, err = s.repo.Insert(ctx, &domain.Subscriber{
		Name:         name,
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	})
	return err
}
