package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	reviewdomain "github.com/polisure/polisure/internal/review/domain"
)

type createReviewRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	PolicyID    string `json:"policyId"`
	PolicyTitle string `json:"policyTitle"`
	Rating      any    `json:"rating"`
	Feedback    string `json:"feedback"`
}

// ratingValue accepts the rating as either a JSON number or a numeric
// string.
func ratingValue(raw any) int {
	switch cast := raw.(type) {
	case float64:
		return int(cast)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(cast))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func (s *Server) ListReviews(c *gin.Context) {
	reviews, err := s.reviewSvc.Latest(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (s *Server) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	id, err := s.reviewSvc.Create(c.Request.Context(), reviewdomain.CreateReviewRequest{
		Email:       req.Email,
		Name:        req.Name,
		Photo:       req.Photo,
		PolicyID:    req.PolicyID,
		PolicyTitle: req.PolicyTitle,
		Rating:      ratingValue(req.Rating),
		Feedback:    req.Feedback,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "insertedId": id})
}
