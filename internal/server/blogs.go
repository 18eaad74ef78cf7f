package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	blogdomain "github.com/polisure/polisure/internal/blog/domain"
)

type createBlogRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorEmail string `json:"authorEmail"`
	AuthorName  string `json:"authorName"`
	Image       string `json:"image"`
}

type updateBlogRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Image     *string `json:"image"`
	Republish bool    `json:"republish"`
}

func (s *Server) ListBlogs(c *gin.Context) {
	blogs, err := s.blogSvc.List(c.Request.Context(), c.Query("authorEmail"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (s *Server) CreateBlog(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	id, err := s.blogSvc.Create(c.Request.Context(), blogdomain.CreateBlogRequest{
		Title:       req.Title,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
		AuthorName:  req.AuthorName,
		Image:       req.Image,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Blog created", "insertedId": id})
}

func (s *Server) UpdateBlog(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.blogSvc.Update(c.Request.Context(), c.Param("id"), blogdomain.UpdateBlogRequest{
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		Republish: req.Republish,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully"})
}

func (s *Server) DeleteBlog(c *gin.Context) {
	if err := s.blogSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func (s *Server) IncrementBlogVisit(c *gin.Context) {
	if err := s.blogSvc.IncrementVisit(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visit count updated"})
}
