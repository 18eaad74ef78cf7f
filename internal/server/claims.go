package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	claimdomain "github.com/polisure/polisure/internal/claim/domain"
)

func (s *Server) ListClaims(c *gin.Context) {
	claims, err := s.claimSvc.List(c.Request.Context(), claimdomain.ListClaimsRequest{
		Email:         c.Query("email"),
		ApplicationID: c.Query("applicationId"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

// CreateClaim accepts a multipart form with text fields plus an
// optional "file" attachment stored on disk before the claim row is
// written.
func (s *Server) CreateClaim(c *gin.Context) {
	req := claimdomain.CreateClaimRequest{
		ApplicationID: c.PostForm("applicationId"),
		PolicyName:    c.PostForm("policyName"),
		Email:         c.PostForm("email"),
		Reason:        c.PostForm("reason"),
	}

	if header, err := c.FormFile("file"); err == nil && header != nil {
		path, err := s.uploads.Save(header)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.FilePath = &path
	}

	id, err := s.claimSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Claim submitted", "insertedId": id})
}

func (s *Server) UpdateClaimStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.claimSvc.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Claim status updated"})
}
