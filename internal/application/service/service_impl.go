package service

import (
	"context"
	"strings"
	"time"

	"github.com/polisure/polisure/internal/application/domain"
	policydomain "github.com/polisure/polisure/internal/policy/domain"
	userdomain "github.com/polisure/polisure/internal/user/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log        *zap.Logger
	Repo       domain.Repository
	PolicyRepo policydomain.Repository
	UserSvc    userdomain.Service
}

type Service struct {
	log        *zap.Logger
	repo       domain.Repository
	policyRepo policydomain.Repository
	userSvc    userdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:        p.Log.Named("application.service"),
		repo:       p.Repo,
		policyRepo: p.PolicyRepo,
		userSvc:    p.UserSvc,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateApplicationRequest) (primitive.ObjectID, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return primitive.NilObjectID, domain.ErrMissingNameOrEmail
	}

	submittedAt := time.Now().UTC()
	if req.SubmittedAt != nil {
		submittedAt = *req.SubmittedAt
	}
	status := domain.StatusPending
	if parsed, err := domain.ParseStatus(req.Status); err == nil {
		status = parsed
	}

	return s.repo.Insert(ctx, &domain.Application{
		FullName:       req.FullName,
		Email:          req.Email,
		PolicyID:       req.PolicyID,
		PolicyTitle:    req.PolicyTitle,
		Status:         status,
		CoverageAmount: req.CoverageAmount,
		TermDuration:   req.TermDuration,
		PolicyType:     req.PolicyType,
		SubmittedAt:    submittedAt,
	})
}

func (s *Service) List(ctx context.Context, email string) ([]domain.Application, error) {
	return s.repo.List(ctx, domain.ListApplicationsFilter{Email: strings.TrimSpace(email)})
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Application, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.Application{}, err
	}

	application, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return domain.Application{}, err
	}
	if application == nil {
		return domain.Application{}, domain.ErrNotFound
	}
	return *application, nil
}

func (s *Service) SetStatusAdmin(ctx context.Context, id string, status string, rejectionFeedback string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return err
	}

	fields := map[string]any{"status": parsed}
	if parsed == domain.StatusRejected {
		feedback := strings.TrimSpace(rejectionFeedback)
		if feedback == "" {
			return domain.ErrFeedbackRequired
		}
		fields["rejectionFeedback"] = feedback
	} else {
		fields["rejectionFeedback"] = ""
	}

	matched, err := s.repo.UpdateFields(ctx, oid, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) SetStatusAgent(ctx context.Context, id string, status string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return err
	}

	application, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if application == nil {
		return domain.ErrNotFound
	}
	prevStatus := application.Status

	if _, err := s.repo.UpdateFields(ctx, oid, map[string]any{"status": parsed}); err != nil {
		return err
	}

	// Read-then-write: under concurrent requests two agents approving the
	// same application can both observe a non-Approved prior status and the
	// counter moves twice. There is no store-level guard against this.
	if prevStatus != domain.StatusApproved && parsed == domain.StatusApproved && application.PolicyID != "" {
		if err := s.policyRepo.IncrementPopularity(ctx, application.PolicyID); err != nil {
			s.log.Warn("popularity increment failed",
				zap.String("application_id", id),
				zap.String("policy_id", application.PolicyID),
				zap.Error(err),
			)
			return err
		}
	}

	return nil
}

func (s *Service) AssignAgent(ctx context.Context, id string, agentID string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	if _, err := parseObjectID(agentID); err != nil {
		return err
	}

	agent, err := s.userSvc.AgentByID(ctx, agentID)
	if err != nil {
		return err
	}

	matched, err := s.repo.UpdateFields(ctx, oid, map[string]any{
		"assignedAgent": domain.AssignedAgent{
			ID:    agent.ID,
			Name:  agent.Name,
			Email: agent.Email,
		},
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) ListAssigned(ctx context.Context, req domain.ListAssignedRequest) ([]domain.Application, error) {
	agentID := strings.TrimSpace(req.AgentID)
	email := strings.TrimSpace(req.Email)
	if agentID == "" && email == "" {
		return nil, domain.ErrMissingAgentFilter
	}

	filter := domain.ListApplicationsFilter{}
	if agentID != "" {
		oid, err := parseObjectID(agentID)
		if err != nil {
			return nil, err
		}
		filter.AgentID = &oid
	} else {
		filter.AgentEmail = email
	}

	return s.repo.List(ctx, filter)
}

func parseObjectID(value string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
