package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	applicationdomain "github.com/polisure/polisure/internal/application/domain"
	"github.com/polisure/polisure/internal/payment/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	gatewayStatusSucceeded = "succeeded"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    domain.Repository
	AppRepo applicationdomain.Repository
	Gateway domain.Gateway
}

type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	appRepo applicationdomain.Repository
	gateway domain.Gateway
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("payment.service"),
		repo:    p.Repo,
		appRepo: p.AppRepo,
		gateway: p.Gateway,
	}
}

func (s *Service) CreateIntent(ctx context.Context, req domain.CreateIntentRequest) (string, error) {
	if strings.TrimSpace(req.ApplicationID) == "" || req.AmountUSDCents <= 0 {
		return "", domain.ErrMissingFields
	}
	appID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ApplicationID))
	if err != nil {
		return "", domain.ErrInvalidApplicationID
	}

	application, err := s.appRepo.FindByID(ctx, appID)
	if err != nil {
		return "", err
	}
	if application == nil {
		return "", domain.ErrApplicationNotFound
	}
	if application.Status != applicationdomain.StatusApproved {
		return "", domain.ErrApplicationNotApproved
	}

	intent, err := s.gateway.CreateIntent(ctx, domain.CreateIntentParams{
		AmountCents:   req.AmountUSDCents,
		Currency:      req.Currency,
		Description:   fmt.Sprintf("Premium payment for application %s", req.ApplicationID),
		ApplicationID: req.ApplicationID,
		AmountUSD:     req.AmountUSD,
		AmountBDT:     req.AmountBDT,
		Frequency:     req.Frequency,
	})
	if err != nil {
		s.log.Error("create payment intent failed",
			zap.String("application_id", req.ApplicationID),
			zap.Error(err),
		)
		return "", domain.ErrGatewayUnavailable
	}
	return intent.ClientSecret, nil
}

// Confirm verifies the intent with the gateway and records the payment.
// The client-supplied status is never used for the verification itself
// but is stored verbatim as the application's paymentStatus.
func (s *Service) Confirm(ctx context.Context, req domain.ConfirmPaymentRequest) error {
	if strings.TrimSpace(req.ApplicationID) == "" ||
		strings.TrimSpace(req.PaymentIntentID) == "" ||
		strings.TrimSpace(req.Status) == "" {
		return domain.ErrMissingFields
	}
	appID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ApplicationID))
	if err != nil {
		return domain.ErrInvalidApplicationID
	}

	application, err := s.appRepo.FindByID(ctx, appID)
	if err != nil {
		return err
	}
	if application == nil {
		return domain.ErrApplicationNotFound
	}

	intent, err := s.gateway.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		s.log.Warn("payment intent retrieval failed",
			zap.String("payment_intent_id", req.PaymentIntentID),
			zap.Error(err),
		)
		return domain.ErrPaymentNotVerified
	}
	if intent.Status != gatewayStatusSucceeded {
		return domain.ErrPaymentNotVerified
	}

	now := time.Now().UTC()

	// Two writes with no transaction around them. A crash between the
	// application update and the payment insert leaves an activated
	// application with no payment row.
	if _, err := s.appRepo.UpdateFields(ctx, appID, map[string]any{
		"paymentStatus": req.Status,
		"frequency":     req.Frequency,
		"activatedAt":   now,
		"paymentInfo": applicationdomain.PaymentInfo{
			PaymentIntentID: req.PaymentIntentID,
			AmountUSD:       req.AmountUSD,
			AmountBDT:       req.AmountBDT,
			StripeCurrency:  intent.Currency,
			StripeAmount:    intent.Amount,
			CreatedAt:       now,
		},
	}); err != nil {
		return err
	}

	_, err = s.repo.Insert(ctx, &domain.Payment{
		ApplicationID:   appID,
		UserEmail:       application.Email,
		PaymentIntentID: req.PaymentIntentID,
		AmountUSD:       req.AmountUSD,
		AmountBDT:       req.AmountBDT,
		Frequency:       req.Frequency,
		Stripe: domain.GatewaySnapshot{
			ID:       intent.ID,
			Amount:   intent.Amount,
			Currency: intent.Currency,
			Status:   intent.Status,
		},
		CreatedAt: now,
	})
	return err
}

func (s *Service) List(ctx context.Context, req domain.ListPaymentsRequest) (domain.ListPaymentsResponse, error) {
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

	views, total, err := s.repo.ListViews(ctx, domain.ListPaymentsFilter{Email: strings.TrimSpace(req.Email)}, (page-1)*limit, limit)
	if err != nil {
		return domain.ListPaymentsResponse{}, err
	}
	return domain.ListPaymentsResponse{
		Total: total,
		Page:  page,
		Limit: limit,
		Data:  views,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.PaymentDetail, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return domain.PaymentDetail{}, domain.ErrInvalidID
	}

	detail, err := s.repo.FindViewByID(ctx, oid)
	if err != nil {
		return domain.PaymentDetail{}, err
	}
	if detail == nil {
		return domain.PaymentDetail{}, domain.ErrNotFound
	}
	return *detail, nil
}

func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	return s.repo.Summary(ctx)
}
