package service

import (
	"context"
	"strings"
	"time"

	"github.com/polisure/polisure/internal/policy/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	defaultLimit = 9
	maxLimit     = 50
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
		log:  p.Log.Named("policy.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListPoliciesRequest) (domain.ListPoliciesResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	skip := int64((page - 1) * limit)

	data, total, err := s.repo.List(ctx, domain.ListPoliciesFilter{
		Category: strings.TrimSpace(req.Category),
		Search:   strings.TrimSpace(req.Search),
	}, skip, int64(limit))
	if err != nil {
		return domain.ListPoliciesResponse{}, err
	}

	return domain.ListPoliciesResponse{
		Total: total,
		Page:  page,
		Limit: limit,
		Data:  data,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Policy, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.Policy{}, err
	}

	policy, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return domain.Policy{}, err
	}
	if policy == nil {
		return domain.Policy{}, domain.ErrNotFound
	}
	return *policy, nil
}

func (s *Service) Create(ctx context.Context, req domain.BuildPolicyRequest) (primitive.ObjectID, error) {
	doc, err := domain.BuildPolicyDocument(req, false)
	if err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now().UTC()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	return s.repo.Insert(ctx, doc)
}

func (s *Service) Update(ctx context.Context, id string, req domain.BuildPolicyRequest) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	doc, err := domain.BuildPolicyDocument(req, true)
	if err != nil {
		return err
	}
	doc["updatedAt"] = time.Now().UTC()

	matched, err := s.repo.Update(ctx, oid, doc)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func parseObjectID(value string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
