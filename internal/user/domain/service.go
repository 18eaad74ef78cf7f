package domain

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRequest struct {
	Email string
	Name  string
	Role  string
	Photo string
}

type UpdateProfileRequest struct {
	Name       *string
	Photo      *string
	NID        *string
	FatherName *string
	MotherName *string
	Address    *string
}

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (primitive.ObjectID, error)
	List(ctx context.Context, role string) ([]User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	UpdateProfile(ctx context.Context, email string, req UpdateProfileRequest) error
	UpdateRole(ctx context.Context, id string, role string) error
	Delete(ctx context.Context, id string) error
	ListAgents(ctx context.Context) ([]User, error)
	AgentByID(ctx context.Context, id string) (User, error)
}

var (
	ErrMissingNameOrEmail = errors.New("name_and_email_required")
	ErrInvalidID          = errors.New("invalid_user_id")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrAlreadyExists      = errors.New("user_already_exists")
	ErrNotFound           = errors.New("user_not_found")
	ErrAgentNotFound      = errors.New("agent_not_found")
)
