package service

import (
	"context"
	"strings"
	"time"

	"github.com/polisure/polisure/internal/blog/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
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
		log:  p.Log.Named("blog.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, authorEmail string) ([]domain.Blog, error) {
	return s.repo.List(ctx, strings.TrimSpace(authorEmail))
}

func (s *Service) Create(ctx context.Context, req domain.CreateBlogRequest) (primitive.ObjectID, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Content) == "" ||
		strings.TrimSpace(req.AuthorEmail) == "" {
		return primitive.NilObjectID, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	return s.repo.Insert(ctx, &domain.Blog{
		Title:       req.Title,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
		AuthorName:  req.AuthorName,
		Image:       req.Image,
		PublishDate: now,
		TotalVisit:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateBlogRequest) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Republish {
		fields["publishDate"] = time.Now().UTC()
	}
	if len(fields) == 0 {
		return domain.ErrNothingToUpdate
	}
	fields["updatedAt"] = time.Now().UTC()

	matched, err := s.repo.UpdateFields(ctx, oid, fields)
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

// IncrementVisit never reports a missing blog, a visit bump on a
// deleted post is a no-op.
func (s *Service) IncrementVisit(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.repo.IncrementVisit(ctx, oid)
}

func parseObjectID(value string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
