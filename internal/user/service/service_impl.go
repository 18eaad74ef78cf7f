package service

import (
	"context"
	"strings"
	"time"

	"github.com/polisure/polisure/internal/user/domain"
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
		log:  p.Log.Named("user.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateUserRequest) (primitive.ObjectID, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return primitive.NilObjectID, domain.ErrMissingNameOrEmail
	}

	// Duplicate detection is a find-then-insert, not a unique index;
	// concurrent submissions of the same email can still both land.
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, domain.ErrAlreadyExists
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	return s.repo.Insert(ctx, &domain.User{
		Email:     email,
		Name:      name,
		Role:      role,
		Photo:     req.Photo,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Service) List(ctx context.Context, role string) ([]domain.User, error) {
	return s.repo.List(ctx, strings.TrimSpace(role))
}

func (s *Service) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrNotFound
	}
	return *user, nil
}

func (s *Service) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrNotFound
	}
	if user.Role == "" {
		return "user", nil
	}
	return user.Role, nil
}

func (s *Service) UpdateProfile(ctx context.Context, email string, req domain.UpdateProfileRequest) error {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Photo != nil {
		fields["photo"] = *req.Photo
	}
	if req.NID != nil {
		fields["nid"] = *req.NID
	}
	if req.FatherName != nil {
		fields["fatherName"] = *req.FatherName
	}
	if req.MotherName != nil {
		fields["motherName"] = *req.MotherName
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	fields["updatedAt"] = time.Now().UTC()

	matched, err := s.repo.UpdateByEmail(ctx, email, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) UpdateRole(ctx context.Context, id string, role string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	matched, err := s.repo.UpdateRole(ctx, oid, role)
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

func (s *Service) ListAgents(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAgents(ctx, 3)
}

func (s *Service) AgentByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.User{}, err
	}

	agent, err := s.repo.FindAgentByID(ctx, oid)
	if err != nil {
		return domain.User{}, err
	}
	if agent == nil {
		return domain.User{}, domain.ErrAgentNotFound
	}
	return *agent, nil
}

func parseObjectID(value string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
