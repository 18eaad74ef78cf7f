package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	policydomain "github.com/polisure/polisure/internal/policy/domain"
)

func (s *Server) ListPolicies(c *gin.Context) {
	resp, err := s.policySvc.List(c.Request.Context(), policydomain.ListPoliciesRequest{
		Page:     int(intQuery(c, "page", 1)),
		Limit:    int(intQuery(c, "limit", 0)),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetPolicyByID(c *gin.Context) {
	policy, err := s.policySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (s *Server) CreatePolicy(c *gin.Context) {
	var req policydomain.BuildPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	id, err := s.policySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Policy created", "insertedId": id})
}

func (s *Server) UpdatePolicy(c *gin.Context) {
	var req policydomain.BuildPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.policySvc.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Policy updated successfully"})
}

func (s *Server) DeletePolicy(c *gin.Context) {
	if err := s.policySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Policy deleted successfully"})
}
