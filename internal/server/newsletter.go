package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) SubscribeNewsletter(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.newsletterSvc.Subscribe(c.Request.Context(), req.Name, req.Email); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully"})
}
