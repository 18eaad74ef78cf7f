package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	Image       string             `bson:"image" json:"image"`
	PublishDate time.Time          `bson:"publishDate" json:"publishDate"`
	TotalVisit  int64              `bson:"totalVisit" json:"totalVisit"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateBlogRequest struct {
	Title       string
	Content     string
	AuthorEmail string
	AuthorName  string
	Image       string
}

// UpdateBlogRequest carries partial updates. Republish resets the
// publish date to now, moving the post back to the top of the feed.
type UpdateBlogRequest struct {
	Title     *string
	Content   *string
	Image     *string
	Republish bool
}

type Service interface {
	List(ctx context.Context, authorEmail string) ([]Blog, error)
	Create(ctx context.Context, req CreateBlogRequest) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, req UpdateBlogRequest) error
	Delete(ctx context.Context, id string) error
	IncrementVisit(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, blog *Blog) (primitive.ObjectID, error)
	List(ctx context.Context, authorEmail string) ([]Blog, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	IncrementVisit(ctx context.Context, id primitive.ObjectID) error
}

var (
	ErrMissingFields   = errors.New("blog_fields_required")
	ErrInvalidID       = errors.New("invalid_blog_id")
	ErrNothingToUpdate = errors.New("blog_nothing_to_update")
	ErrNotFound        = errors.New("blog_not_found")
)
