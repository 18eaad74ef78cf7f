package service

import (
	"context"
	"strings"
	"time"

	"github.com/polisure/polisure/internal/review/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const latestLimit = 5

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
		log:  p.Log.Named("review.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateReviewRequest) (primitive.ObjectID, error) {
	if strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Photo) == "" ||
		strings.TrimSpace(req.PolicyID) == "" ||
		strings.TrimSpace(req.PolicyTitle) == "" ||
		strings.TrimSpace(req.Feedback) == "" ||
		req.Rating == 0 {
		return primitive.NilObjectID, domain.ErrMissingFields
	}

	policyID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.PolicyID))
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidPolicyID
	}

	return s.repo.Insert(ctx, &domain.Review{
		Email:       req.Email,
		Name:        req.Name,
		Photo:       req.Photo,
		PolicyID:    policyID,
		PolicyTitle: req.PolicyTitle,
		Rating:      req.Rating,
		Feedback:    req.Feedback,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *Service) Latest(ctx context.Context) ([]domain.Review, error) {
	return s.repo.Latest(ctx, latestLimit)
}
