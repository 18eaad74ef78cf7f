package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/polisure/polisure/internal/application/domain"
	"github.com/polisure/polisure/internal/application/service"
	policydomain "github.com/polisure/polisure/internal/policy/domain"
	userdomain "github.com/polisure/polisure/internal/user/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAppRepo struct {
	byID    map[primitive.ObjectID]*domain.Application
	updates []map[string]any
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{byID: map[primitive.ObjectID]*domain.Application{}}
}

func (r *fakeAppRepo) Insert(ctx context.Context, application *domain.Application) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	application.ID = id
	r.byID[id] = application
	return id, nil
}

func (r *fakeAppRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Application, error) {
	application, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *application
	return &copied, nil
}

func (r *fakeAppRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, id := range ids {
		if application, ok := r.byID[id]; ok {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) List(ctx context.Context, filter domain.ListApplicationsFilter) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, application := range r.byID {
		out = append(out, *application)
	}
	return out, nil
}

func (r *fakeAppRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	application, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	r.updates = append(r.updates, fields)
	if status, ok := fields["status"].(domain.Status); ok {
		application.Status = status
	}
	if feedback, ok := fields["rejectionFeedback"].(string); ok {
		application.RejectionFeedback = feedback
	}
	return 1, nil
}

type fakePolicyRepo struct {
	increments []string
	incErr     error
}

func (r *fakePolicyRepo) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (r *fakePolicyRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*policydomain.Policy, error) {
	return nil, nil
}

func (r *fakePolicyRepo) List(ctx context.Context, filter policydomain.ListPoliciesFilter, skip, limit int64) ([]policydomain.Policy, int64, error) {
	return nil, 0, nil
}

func (r *fakePolicyRepo) Update(ctx context.Context, id primitive.ObjectID, doc bson.M) (int64, error) {
	return 0, nil
}

func (r *fakePolicyRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (r *fakePolicyRepo) IncrementPopularity(ctx context.Context, policyRef string) error {
	if r.incErr != nil {
		return r.incErr
	}
	r.increments = append(r.increments, policyRef)
	return nil
}

type fakeUserService struct {
	agent userdomain.User
	err   error
}

func (s *fakeUserService) Create(ctx context.Context, req userdomain.CreateUserRequest) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}
func (s *fakeUserService) List(ctx context.Context, role string) ([]userdomain.User, error) {
	return nil, nil
}
func (s *fakeUserService) GetByEmail(ctx context.Context, email string) (userdomain.User, error) {
	return userdomain.User{}, nil
}
func (s *fakeUserService) RoleByEmail(ctx context.Context, email string) (string, error) {
	return "", nil
}
func (s *fakeUserService) UpdateProfile(ctx context.Context, email string, req userdomain.UpdateProfileRequest) error {
	return nil
}
func (s *fakeUserService) UpdateRole(ctx context.Context, id string, role string) error {
	return nil
}
func (s *fakeUserService) Delete(ctx context.Context, id string) error { return nil }
func (s *fakeUserService) ListAgents(ctx context.Context) ([]userdomain.User, error) {
	return nil, nil
}
func (s *fakeUserService) AgentByID(ctx context.Context, id string) (userdomain.User, error) {
	if s.err != nil {
		return userdomain.User{}, s.err
	}
	return s.agent, nil
}

func newService(appRepo *fakeAppRepo, policyRepo *fakePolicyRepo, userSvc userdomain.Service) domain.Service {
	if policyRepo == nil {
		policyRepo = &fakePolicyRepo{}
	}
	if userSvc == nil {
		userSvc = &fakeUserService{}
	}
	return service.New(service.Params{
		Log:        zap.NewNop(),
		Repo:       appRepo,
		PolicyRepo: policyRepo,
		UserSvc:    userSvc,
	})
}

func seedApplication(repo *fakeAppRepo, status domain.Status, policyID string) primitive.ObjectID {
	id, _ := repo.Insert(context.Background(), &domain.Application{
		FullName: "Jamil Ahmed",
		Email:    "jamil@example.com",
		PolicyID: policyID,
		Status:   status,
	})
	return id
}

func TestAgentApprovalBumpsPopularityOnce(t *testing.T) {
	ctx := context.Background()
	appRepo := newFakeAppRepo()
	policyRepo := &fakePolicyRepo{}
	svc := newService(appRepo, policyRepo, nil)

	id := seedApplication(appRepo, domain.StatusPending, "policy-123")

	if err := svc.SetStatusAgent(ctx, id.Hex(), "Approved"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if len(policyRepo.increments) != 1 {
		t.Fatalf("expected one popularity increment, got %d", len(policyRepo.increments))
	}
	if policyRepo.increments[0] != "policy-123" {
		t.Fatalf("unexpected policy ref %q", policyRepo.increments[0])
	}

	// Re-approving an already approved application is a no-op for the counter.
	if err := svc.SetStatusAgent(ctx, id.Hex(), "Approved"); err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if len(policyRepo.increments) != 1 {
		t.Fatalf("approved-to-approved must not increment, got %d", len(policyRepo.increments))
	}
}

func TestAgentApprovalWithoutPolicySkipsIncrement(t *testing.T) {
	appRepo := newFakeAppRepo()
	policyRepo := &fakePolicyRepo{}
	svc := newService(appRepo, policyRepo, nil)

	id := seedApplication(appRepo, domain.StatusPending, "")

	if err := svc.SetStatusAgent(context.Background(), id.Hex(), "Approved"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if len(policyRepo.increments) != 0 {
		t.Fatalf("no policy reference means no increment")
	}
}

func TestAdminRejectRequiresFeedback(t *testing.T) {
	ctx := context.Background()
	appRepo := newFakeAppRepo()
	svc := newService(appRepo, nil, nil)

	id := seedApplication(appRepo, domain.StatusPending, "")

	err := svc.SetStatusAdmin(ctx, id.Hex(), "Rejected", "   ")
	if !errors.Is(err, domain.ErrFeedbackRequired) {
		t.Fatalf("blank feedback must be rejected, got %v", err)
	}

	if err := svc.SetStatusAdmin(ctx, id.Hex(), "Rejected", "  missing documents  "); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if appRepo.byID[id].RejectionFeedback != "missing documents" {
		t.Fatalf("feedback must be stored trimmed, got %q", appRepo.byID[id].RejectionFeedback)
	}
}

func TestAdminStatusChangeClearsFeedback(t *testing.T) {
	ctx := context.Background()
	appRepo := newFakeAppRepo()
	svc := newService(appRepo, nil, nil)

	id := seedApplication(appRepo, domain.StatusPending, "")

	if err := svc.SetStatusAdmin(ctx, id.Hex(), "Rejected", "bad paperwork"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if err := svc.SetStatusAdmin(ctx, id.Hex(), "Pending", ""); err != nil {
		t.Fatalf("back to pending: %v", err)
	}
	if appRepo.byID[id].RejectionFeedback != "" {
		t.Fatalf("leaving Rejected must clear feedback, got %q", appRepo.byID[id].RejectionFeedback)
	}
}

func TestAdminApprovalNeverTouchesPopularity(t *testing.T) {
	appRepo := newFakeAppRepo()
	policyRepo := &fakePolicyRepo{}
	svc := newService(appRepo, policyRepo, nil)

	id := seedApplication(appRepo, domain.StatusPending, "policy-123")

	if err := svc.SetStatusAdmin(context.Background(), id.Hex(), "Approved", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if len(policyRepo.increments) != 0 {
		t.Fatalf("admin path must not touch popularity")
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	appRepo := newFakeAppRepo()
	svc := newService(appRepo, nil, nil)

	id := seedApplication(appRepo, domain.StatusPending, "")

	if err := svc.SetStatusAgent(context.Background(), id.Hex(), "Archived"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateRequiresNameAndEmail(t *testing.T) {
	svc := newService(newFakeAppRepo(), nil, nil)

	_, err := svc.Create(context.Background(), domain.CreateApplicationRequest{Email: "a@b.c"})
	if !errors.Is(err, domain.ErrMissingNameOrEmail) {
		t.Fatalf("expected ErrMissingNameOrEmail, got %v", err)
	}
}

func TestCreateDefaultsStatusToPending(t *testing.T) {
	appRepo := newFakeAppRepo()
	svc := newService(appRepo, nil, nil)

	id, err := svc.Create(context.Background(), domain.CreateApplicationRequest{
		FullName: "Jamil Ahmed",
		Email:    "jamil@example.com",
		Status:   "nonsense",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appRepo.byID[id].Status != domain.StatusPending {
		t.Fatalf("unknown status must default to Pending, got %q", appRepo.byID[id].Status)
	}
}

func TestListAssignedRequiresFilter(t *testing.T) {
	svc := newService(newFakeAppRepo(), nil, nil)

	_, err := svc.ListAssigned(context.Background(), domain.ListAssignedRequest{})
	if !errors.Is(err, domain.ErrMissingAgentFilter) {
		t.Fatalf("expected ErrMissingAgentFilter, got %v", err)
	}
}

func TestAssignAgentStoresSnapshot(t *testing.T) {
	appRepo := newFakeAppRepo()
	agentID := primitive.NewObjectID()
	userSvc := &fakeUserService{agent: userdomain.User{
		ID:    agentID,
		Name:  "Agent Rahim",
		Email: "rahim@example.com",
	}}
	svc := newService(appRepo, nil, userSvc)

	id := seedApplication(appRepo, domain.StatusPending, "")

	if err := svc.AssignAgent(context.Background(), id.Hex(), agentID.Hex()); err != nil {
		t.Fatalf("assign: %v", err)
	}

	last := appRepo.updates[len(appRepo.updates)-1]
	assigned, ok := last["assignedAgent"].(domain.AssignedAgent)
	if !ok {
		t.Fatalf("expected AssignedAgent in update, got %T", last["assignedAgent"])
	}
	if assigned.ID != agentID || assigned.Email != "rahim@example.com" {
		t.Fatalf("unexpected snapshot %+v", assigned)
	}
}

func TestAssignAgentPropagatesLookupFailure(t *testing.T) {
	appRepo := newFakeAppRepo()
	userSvc := &fakeUserService{err: userdomain.ErrAgentNotFound}
	svc := newService(appRepo, nil, userSvc)

	id := seedApplication(appRepo, domain.StatusPending, "")

	err := svc.AssignAgent(context.Background(), id.Hex(), primitive.NewObjectID().Hex())
	if !errors.Is(err, userdomain.ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
}
