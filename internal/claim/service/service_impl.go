package service

import (
	"context"
	"strings"
	"time"

	applicationdomain "github.com/polisure/polisure/internal/application/domain"
	"github.com/polisure/polisure/internal/claim/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    domain.Repository
	AppRepo applicationdomain.Repository
}

type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	appRepo applicationdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("claim.service"),
		repo:    p.Repo,
		appRepo: p.AppRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateClaimRequest) (primitive.ObjectID, error) {
	if strings.TrimSpace(req.PolicyName) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Reason) == "" {
		return primitive.NilObjectID, domain.ErrMissingFields
	}
	appID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ApplicationID))
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidApplicationID
	}

	application, err := s.appRepo.FindByID(ctx, appID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if application == nil {
		return primitive.NilObjectID, domain.ErrApplicationNotFound
	}

	now := time.Now().UTC()
	return s.repo.Insert(ctx, &domain.Claim{
		ApplicationID:  appID,
		PolicyName:     req.PolicyName,
		Email:          req.Email,
		Reason:         req.Reason,
		Status:         domain.StatusPending,
		CoverageAmount: application.CoverageAmount,
		TermDuration:   application.TermDuration,
		PolicyType:     application.PolicyType,
		FilePath:       req.FilePath,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// List enriches legacy claims that predate the coverage snapshot with the
// current values from their application. The enrichment is response-only,
// stored claims are never rewritten.
func (s *Service) List(ctx context.Context, req domain.ListClaimsRequest) ([]domain.Claim, error) {
	filter := domain.ListClaimsFilter{Email: strings.TrimSpace(req.Email)}
	if appID := strings.TrimSpace(req.ApplicationID); appID != "" {
		// A malformed applicationId filter is dropped, not rejected.
		if oid, err := primitive.ObjectIDFromHex(appID); err == nil {
			filter.ApplicationID = &oid
		}
	}

	claims, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	missing := map[primitive.ObjectID]struct{}{}
	for _, claim := range claims {
		if claim.CoverageAmount == nil || claim.TermDuration == nil || claim.PolicyType == nil {
			missing[claim.ApplicationID] = struct{}{}
		}
	}
	if len(missing) == 0 {
		return claims, nil
	}

	ids := make([]primitive.ObjectID, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	applications, err := s.appRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]applicationdomain.Application, len(applications))
	for _, application := range applications {
		byID[application.ID] = application
	}

	for i := range claims {
		application, ok := byID[claims[i].ApplicationID]
		if !ok {
			continue
		}
		if claims[i].CoverageAmount == nil {
			claims[i].CoverageAmount = application.CoverageAmount
		}
		if claims[i].TermDuration == nil {
			claims[i].TermDuration = application.TermDuration
		}
		if claims[i].PolicyType == nil {
			claims[i].PolicyType = application.PolicyType
		}
	}
	return claims, nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status string) error {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return err
	}

	matched, err := s.repo.UpdateFields(ctx, oid, map[string]any{
		"status":    parsed,
		"updatedAt": time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}
