package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	userdomain "github.com/polisure/polisure/internal/user/domain"
)

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

type updateProfileRequest struct {
	Name       *string `json:"name"`
	Photo      *string `json:"photo"`
	NID        *string `json:"nid"`
	FatherName *string `json:"fatherName"`
	MotherName *string `json:"motherName"`
	Address    *string `json:"address"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.userSvc.List(c.Request.Context(), c.Query("role"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	id, err := s.userSvc.Create(c.Request.Context(), userdomain.CreateUserRequest{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
		Photo: req.Photo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "insertedId": id})
}

func (s *Server) GetUserByEmail(c *gin.Context) {
	user, err := s.userSvc.GetByEmail(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) GetUserRole(c *gin.Context) {
	role, err := s.userSvc.RoleByEmail(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (s *Server) UpdateUserProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.userSvc.UpdateProfile(c.Request.Context(), c.Param("identifier"), userdomain.UpdateProfileRequest{
		Name:       req.Name,
		Photo:      req.Photo,
		NID:        req.NID,
		FatherName: req.FatherName,
		MotherName: req.MotherName,
		Address:    req.Address,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func (s *Server) UpdateUserRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.userSvc.UpdateRole(c.Request.Context(), c.Param("identifier"), req.Role); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

func (s *Server) DeleteUser(c *gin.Context) {
	if err := s.userSvc.Delete(c.Request.Context(), c.Param("identifier")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (s *Server) ListAgents(c *gin.Context) {
	agents, err := s.userSvc.ListAgents(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}
