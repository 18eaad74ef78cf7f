package service_test

import (
	"context"
	"errors"
	"testing"

	applicationdomain "github.com/polisure/polisure/internal/application/domain"
	"github.com/polisure/polisure/internal/claim/domain"
	"github.com/polisure/polisure/internal/claim/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAppRepo struct {
	byID      map[primitive.ObjectID]*applicationdomain.Application
	idQueries [][]primitive.ObjectID
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{byID: map[primitive.ObjectID]*applicationdomain.Application{}}
}

func (r *fakeAppRepo) Insert(ctx context.Context, application *applicationdomain.Application) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	application.ID = id
	r.byID[id] = application
	return id, nil
}

func (r *fakeAppRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*applicationdomain.Application, error) {
	application, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *application
	return &copied, nil
}

func (r *fakeAppRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]applicationdomain.Application, error) {
	r.idQueries = append(r.idQueries, ids)
	out := []applicationdomain.Application{}
	for _, id := range ids {
		if application, ok := r.byID[id]; ok {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) List(ctx context.Context, filter applicationdomain.ListApplicationsFilter) ([]applicationdomain.Application, error) {
	return nil, nil
}

func (r *fakeAppRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	return 0, nil
}

type fakeClaimRepo struct {
	claims  []domain.Claim
	updates []map[string]any
	matched int64
}

func (r *fakeClaimRepo) Insert(ctx context.Context, claim *domain.Claim) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	claim.ID = id
	r.claims = append(r.claims, *claim)
	return id, nil
}

func (r *fakeClaimRepo) List(ctx context.Context, filter domain.ListClaimsFilter) ([]domain.Claim, error) {
	out := make([]domain.Claim, len(r.claims))
	copy(out, r.claims)
	return out, nil
}

func (r *fakeClaimRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	r.updates = append(r.updates, fields)
	return r.matched, nil
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func newService(claimRepo *fakeClaimRepo, appRepo *fakeAppRepo) domain.Service {
	return service.New(service.Params{
		Log:     zap.NewNop(),
		Repo:    claimRepo,
		AppRepo: appRepo,
	})
}

func TestCreateSnapshotsCoverageFromApplication(t *testing.T) {
	appRepo := newFakeAppRepo()
	claimRepo := &fakeClaimRepo{}
	svc := newService(claimRepo, appRepo)

	appID, _ := appRepo.Insert(context.Background(), &applicationdomain.Application{
		Email:          "jamil@example.com",
		CoverageAmount: floatPtr(500000),
		TermDuration:   strPtr("20 years"),
		PolicyType:     strPtr("Term Life"),
	})

	_, err := svc.Create(context.Background(), domain.CreateClaimRequest{
		ApplicationID: appID.Hex(),
		PolicyName:    "Term Shield",
		Email:         "jamil@example.com",
		Reason:        "hospitalization",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	claim := claimRepo.claims[0]
	if claim.CoverageAmount == nil || *claim.CoverageAmount != 500000 {
		t.Fatalf("coverage must be snapshotted, got %v", claim.CoverageAmount)
	}
	if claim.TermDuration == nil || *claim.TermDuration != "20 years" {
		t.Fatalf("termDuration must be snapshotted, got %v", claim.TermDuration)
	}
	if claim.Status != domain.StatusPending {
		t.Fatalf("new claims start Pending, got %q", claim.Status)
	}
}

func TestCreateRejectsMissingApplication(t *testing.T) {
	svc := newService(&fakeClaimRepo{}, newFakeAppRepo())

	_, err := svc.Create(context.Background(), domain.CreateClaimRequest{
		ApplicationID: primitive.NewObjectID().Hex(),
		PolicyName:    "Term Shield",
		Email:         "jamil@example.com",
		Reason:        "hospitalization",
	})
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestCreateRequiresAllFields(t *testing.T) {
	svc := newService(&fakeClaimRepo{}, newFakeAppRepo())

	_, err := svc.Create(context.Background(), domain.CreateClaimRequest{
		ApplicationID: primitive.NewObjectID().Hex(),
		PolicyName:    "Term Shield",
		Email:         "jamil@example.com",
	})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestListEnrichesLegacyClaimsWithoutPersisting(t *testing.T) {
	appRepo := newFakeAppRepo()
	claimRepo := &fakeClaimRepo{}
	svc := newService(claimRepo, appRepo)

	appID, _ := appRepo.Insert(context.Background(), &applicationdomain.Application{
		CoverageAmount: floatPtr(250000),
		TermDuration:   strPtr("10 years"),
		PolicyType:     strPtr("Whole Life"),
	})

	// A legacy claim predating the snapshot fields.
	claimRepo.claims = append(claimRepo.claims, domain.Claim{
		ID:            primitive.NewObjectID(),
		ApplicationID: appID,
		Email:         "jamil@example.com",
	})

	claims, err := svc.List(context.Background(), domain.ListClaimsRequest{Email: "jamil@example.com"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if claims[0].CoverageAmount == nil || *claims[0].CoverageAmount != 250000 {
		t.Fatalf("legacy claim must be enriched, got %v", claims[0].CoverageAmount)
	}

	// Enrichment is response-only.
	if claimRepo.claims[0].CoverageAmount != nil {
		t.Fatalf("stored claim must stay untouched")
	}
	if len(claimRepo.updates) != 0 {
		t.Fatalf("no write-back expected, got %d updates", len(claimRepo.updates))
	}
}

func TestListSkipsEnrichmentWhenComplete(t *testing.T) {
	appRepo := newFakeAppRepo()
	claimRepo := &fakeClaimRepo{}
	svc := newService(claimRepo, appRepo)

	claimRepo.claims = append(claimRepo.claims, domain.Claim{
		ID:             primitive.NewObjectID(),
		ApplicationID:  primitive.NewObjectID(),
		CoverageAmount: floatPtr(100000),
		TermDuration:   strPtr("5 years"),
		PolicyType:     strPtr("Term Life"),
	})

	if _, err := svc.List(context.Background(), domain.ListClaimsRequest{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appRepo.idQueries) != 0 {
		t.Fatalf("complete claims must not trigger an application lookup")
	}
}

func TestListLeavesOrphanedClaimsAlone(t *testing.T) {
	appRepo := newFakeAppRepo()
	claimRepo := &fakeClaimRepo{}
	svc := newService(claimRepo, appRepo)

	claimRepo.claims = append(claimRepo.claims, domain.Claim{
		ID:            primitive.NewObjectID(),
		ApplicationID: primitive.NewObjectID(),
	})

	claims, err := svc.List(context.Background(), domain.ListClaimsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if claims[0].CoverageAmount != nil {
		t.Fatalf("claims with a missing parent stay as stored")
	}
}

func TestSetStatusValidation(t *testing.T) {
	claimRepo := &fakeClaimRepo{matched: 1}
	svc := newService(claimRepo, newFakeAppRepo())

	if err := svc.SetStatus(context.Background(), "nope", "Approved"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), "Lost"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), "Approved"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	claimRepo.matched = 0
	if err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), "Approved"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
