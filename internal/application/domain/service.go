package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateApplicationRequest struct {
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	PolicyID       string     `json:"policyId"`
	PolicyTitle    string     `json:"policyTitle"`
	CoverageAmount *float64   `json:"coverageAmount"`
	TermDuration   *string    `json:"termDuration"`
	PolicyType     *string    `json:"policyType"`
	Status         string     `json:"status"`
	SubmittedAt    *time.Time `json:"submittedAt"`
}

type ListAssignedRequest struct {
	AgentID string
	Email   string
}

type Service interface {
	Create(ctx context.Context, req CreateApplicationRequest) (primitive.ObjectID, error)
	List(ctx context.Context, email string) ([]Application, error)
	GetByID(ctx context.Context, id string) (Application, error)

	// SetStatusAdmin is the admin status change: Rejected requires non-blank
	// feedback (stored trimmed); every other status clears stored feedback.
	// It never touches policy popularity.
	SetStatusAdmin(ctx context.Context, id string, status string, rejectionFeedback string) error

	// SetStatusAgent is the agent status change: no feedback handling, but a
	// transition into Approved from any other status bumps the referenced
	// policy's popularity by one.
	SetStatusAgent(ctx context.Context, id string, status string) error

	AssignAgent(ctx context.Context, id string, agentID string) error
	ListAssigned(ctx context.Context, req ListAssignedRequest) ([]Application, error)
}

var (
	ErrMissingNameOrEmail = errors.New("full_name_and_email_required")
	ErrInvalidID          = errors.New("invalid_application_id")
	ErrInvalidStatus      = errors.New("invalid_application_status")
	ErrFeedbackRequired   = errors.New("rejection_feedback_required")
	ErrNotFound           = errors.New("application_not_found")
	ErrMissingAgentFilter = errors.New("agent_filter_required")
)
