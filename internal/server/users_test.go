package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	userdomain "github.com/polisure/polisure/internal/user/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserService struct {
	createErr   error
	createCalls int
	role        string
	roleErr     error
}

func (f *fakeUserService) Create(ctx context.Context, req userdomain.CreateUserRequest) (primitive.ObjectID, error) {
	f.createCalls++
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeUserService) List(ctx context.Context, role string) ([]userdomain.User, error) {
	return nil, nil
}

func (f *fakeUserService) GetByEmail(ctx context.Context, email string) (userdomain.User, error) {
	return userdomain.User{}, userdomain.ErrNotFound
}

func (f *fakeUserService) RoleByEmail(ctx context.Context, email string) (string, error) {
	if f.roleErr != nil {
		return "", f.roleErr
	}
	return f.role, nil
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, email string, req userdomain.UpdateProfileRequest) error {
	return nil
}

func (f *fakeUserService) UpdateRole(ctx context.Context, id string, role string) error {
	return nil
}

func (f *fakeUserService) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeUserService) ListAgents(ctx context.Context) ([]userdomain.User, error) {
	return nil, nil
}

func (f *fakeUserService) AgentByID(ctx context.Context, id string) (userdomain.User, error) {
	return userdomain.User{}, nil
}

func newUserRouter(svc userdomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	srv := &Server{userSvc: svc}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/users", srv.CreateUser)
	router.GET("/users/:identifier", srv.GetUserByEmail)
	router.GET("/users/:identifier/role", srv.GetUserRole)
	return router
}

func TestCreateUserDuplicateReturnsConflict(t *testing.T) {
	router := newUserRouter(&fakeUserService{createErr: userdomain.ErrAlreadyExists})

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"email":"a@b.c","name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"message":"User already exists"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestCreateUserRejectsMalformedBody(t *testing.T) {
	svc := &fakeUserService{}
	router := newUserRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if svc.createCalls != 0 {
		t.Fatal("expected service not to be called for a malformed body")
	}
}

func TestGetUserRoleResponseShape(t *testing.T) {
	router := newUserRouter(&fakeUserService{role: "agent"})

	req := httptest.NewRequest(http.MethodGet, "/users/a@b.c/role", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"role":"agent"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestGetUserByEmailNotFound(t *testing.T) {
	router := newUserRouter(&fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users/missing@b.c", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"message":"User not found"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}
