package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	applicationdomain "github.com/polisure/polisure/internal/application/domain"
	blogdomain "github.com/polisure/polisure/internal/blog/domain"
	claimdomain "github.com/polisure/polisure/internal/claim/domain"
	newsletterdomain "github.com/polisure/polisure/internal/newsletter/domain"
	paymentdomain "github.com/polisure/polisure/internal/payment/domain"
	policydomain "github.com/polisure/polisure/internal/policy/domain"
	reviewdomain "github.com/polisure/polisure/internal/review/domain"
	userdomain "github.com/polisure/polisure/internal/user/domain"
	"github.com/polisure/polisure/internal/upload"
)

// errorResponse is the error body for every endpoint.
type errorResponse struct {
	Message string `json:"message"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware maps errors attached to the context into the
// response after the handler chain runs. Handlers that already wrote a
// body win.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Message: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	// ---- 400 ----
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request body"
	case errors.Is(err, userdomain.ErrMissingNameOrEmail),
		errors.Is(err, newsletterdomain.ErrMissingFields):
		return http.StatusBadRequest, "Name and email are required"
	case errors.Is(err, userdomain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid user id"
	case errors.Is(err, userdomain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, policydomain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid policy ID format"
	case errors.Is(err, applicationdomain.ErrMissingNameOrEmail):
		return http.StatusBadRequest, "Full Name and Email are required"
	case errors.Is(err, applicationdomain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid application id"
	case errors.Is(err, applicationdomain.ErrInvalidStatus),
		errors.Is(err, claimdomain.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid status"
	case errors.Is(err, applicationdomain.ErrFeedbackRequired):
		return http.StatusBadRequest, "Rejection feedback is required when rejecting"
	case errors.Is(err, applicationdomain.ErrMissingAgentFilter):
		return http.StatusBadRequest, "agentId or email is required"
	case errors.Is(err, claimdomain.ErrMissingFields),
		errors.Is(err, reviewdomain.ErrMissingFields):
		return http.StatusBadRequest, "All fields are required"
	case errors.Is(err, claimdomain.ErrInvalidApplicationID),
		errors.Is(err, paymentdomain.ErrInvalidApplicationID):
		return http.StatusBadRequest, "Invalid applicationId"
	case errors.Is(err, claimdomain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid claim id"
	case errors.Is(err, reviewdomain.ErrInvalidPolicyID):
		return http.StatusBadRequest, "Invalid policy id"
	case errors.Is(err, blogdomain.ErrMissingFields):
		return http.StatusBadRequest, "title, content and authorEmail are required"
	case errors.Is(err, blogdomain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid blog ID"
	case errors.Is(err, blogdomain.ErrNothingToUpdate):
		return http.StatusBadRequest, "Nothing to update"
	case errors.Is(err, paymentdomain.ErrMissingFields):
		return http.StatusBadRequest, "Required payment fields are missing"
	case errors.Is(err, paymentdomain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid payment id"
	case errors.Is(err, paymentdomain.ErrApplicationNotApproved):
		return http.StatusBadRequest, "Application is not approved for payment"
	case errors.Is(err, paymentdomain.ErrPaymentNotVerified):
		return http.StatusBadRequest, "PaymentIntent not succeeded on Stripe"
	case errors.Is(err, upload.ErrFileTooLarge):
		return http.StatusBadRequest, "File is too large"
	case errors.Is(err, upload.ErrFileTypeNotAllowed):
		return http.StatusBadRequest, "File type not allowed"

	// ---- 404 ----
	case errors.Is(err, userdomain.ErrNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, userdomain.ErrAgentNotFound):
		return http.StatusNotFound, "Agent not found"
	case errors.Is(err, policydomain.ErrNotFound):
		return http.StatusNotFound, "Policy not found"
	case errors.Is(err, applicationdomain.ErrNotFound),
		errors.Is(err, claimdomain.ErrApplicationNotFound),
		errors.Is(err, paymentdomain.ErrApplicationNotFound):
		return http.StatusNotFound, "Application not found"
	case errors.Is(err, claimdomain.ErrNotFound):
		return http.StatusNotFound, "Claim not found"
	case errors.Is(err, blogdomain.ErrNotFound):
		return http.StatusNotFound, "Blog not found"
	case errors.Is(err, paymentdomain.ErrNotFound):
		return http.StatusNotFound, "Payment not found"

	// ---- 409 ----
	case errors.Is(err, userdomain.ErrAlreadyExists):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, newsletterdomain.ErrAlreadySubscribed):
		return http.StatusConflict, "Email already subscribed"

	// ---- 500 ----
	case errors.Is(err, paymentdomain.ErrGatewayUnavailable):
		return http.StatusInternalServerError, "Stripe error"
	default:
		var missing *policydomain.MissingFieldsError
		if errors.As(err, &missing) {
			return http.StatusBadRequest, missing.Error()
		}
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
