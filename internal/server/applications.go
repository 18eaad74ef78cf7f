package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	applicationdomain "github.com/polisure/polisure/internal/application/domain"
)

type updateStatusRequest struct {
	Status            string `json:"status"`
	RejectionFeedback string `json:"rejectionFeedback"`
}

type assignAgentRequest struct {
	AgentID string `json:"agentId"`
}

func (s *Server) ListApplications(c *gin.Context) {
	applications, err := s.appSvc.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (s *Server) CreateApplication(c *gin.Context) {
	var req applicationdomain.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	id, err := s.appSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted", "insertedId": id})
}

func (s *Server) GetApplicationByID(c *gin.Context) {
	application, err := s.appSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (s *Server) UpdateApplicationStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.appSvc.SetStatusAdmin(c.Request.Context(), c.Param("id"), req.Status, req.RejectionFeedback)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

func (s *Server) AssignAgent(c *gin.Context) {
	var req assignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.appSvc.AssignAgent(c.Request.Context(), c.Param("id"), req.AgentID); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agent assigned successfully"})
}

func (s *Server) ListAssignedApplications(c *gin.Context) {
	applications, err := s.appSvc.ListAssigned(c.Request.Context(), applicationdomain.ListAssignedRequest{
		AgentID: c.Query("agentId"),
		Email:   c.Query("email"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (s *Server) UpdateApplicationStatusAsAgent(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.appSvc.SetStatusAgent(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
