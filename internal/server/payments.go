package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	paymentdomain "github.com/polisure/polisure/internal/payment/domain"
)

type createIntentRequest struct {
	ApplicationID  string  `json:"applicationId"`
	AmountUSDCents int64   `json:"amountUsdCents"`
	Currency       string  `json:"currency"`
	AmountUSD      float64 `json:"amountUSD"`
	AmountBDT      float64 `json:"amountBDT"`
	Frequency      string  `json:"frequency"`
}

type confirmPaymentRequest struct {
	ApplicationID   string  `json:"applicationId"`
	PaymentIntentID string  `json:"paymentIntentId"`
	AmountUSD       float64 `json:"amountUSD"`
	AmountBDT       float64 `json:"amountBDT"`
	Frequency       string  `json:"frequency"`
	Status          string  `json:"status"`
}

func (s *Server) ListPayments(c *gin.Context) {
	resp, err := s.paymentSvc.List(c.Request.Context(), paymentdomain.ListPaymentsRequest{
		Email: c.Query("email"),
		Page:  intQuery(c, "page", 1),
		Limit: intQuery(c, "limit", 0),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetPaymentByID(c *gin.Context) {
	detail, err := s.paymentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) GetPaymentsSummary(c *gin.Context) {
	summary, err := s.paymentSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) CreatePaymentIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	clientSecret, err := s.paymentSvc.CreateIntent(c.Request.Context(), paymentdomain.CreateIntentRequest{
		ApplicationID:  req.ApplicationID,
		AmountUSDCents: req.AmountUSDCents,
		Currency:       req.Currency,
		AmountUSD:      req.AmountUSD,
		AmountBDT:      req.AmountBDT,
		Frequency:      req.Frequency,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

func (s *Server) ConfirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.paymentSvc.Confirm(c.Request.Context(), paymentdomain.ConfirmPaymentRequest{
		ApplicationID:   req.ApplicationID,
		PaymentIntentID: req.PaymentIntentID,
		AmountUSD:       req.AmountUSD,
		AmountBDT:       req.AmountBDT,
		Frequency:       req.Frequency,
		Status:          req.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Payment confirmed & application updated"})
}
