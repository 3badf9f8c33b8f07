package usecase

import (
	"context"
	"time"

	"gia/internal/domain/entity"
)

// ContentUsecase defines blog and magazine operations.
type ContentUsecase interface {
	// ListPosts returns published blog posts.
	ListPosts(ctx context.Context, limit, offset int) ([]entity.BlogPost, error)

	// GetPost returns a single published post; unpublished posts are
	// indistinguishable from absent ones.
	GetPost(ctx context.Context, id string) (*entity.BlogPost, error)

	// CreatePost creates a blog post authored by the caller. Only artists
	// and admins may author posts.
	CreatePost(ctx context.Context, caller *entity.User, input *BlogPostInput) (*entity.BlogPost, error)

	// ListMagazines returns magazine issues.
	ListMagazines(ctx context.Context, limit, offset int) ([]entity.Magazine, error)

	// PublishMagazine creates a magazine issue. Superuser-only; the
	// principal check is enforced at the routing layer.
	PublishMagazine(ctx context.Context, input *MagazineInput) (*entity.Magazine, error)
}

// BlogPostInput defines the caller-supplied blog post fields.
type BlogPostInput struct {
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	FeaturedImage string   `json:"featuredImage"`
	Images        []string `json:"images"`
	Published     bool     `json:"published"`
}

// MagazineInput defines the caller-supplied magazine fields.
type MagazineInput struct {
	Issue       int       `json:"issue" validate:"required,gt=0"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	Content     string    `json:"content"`
	Articles    []string  `json:"articles"`
	ReleaseDate time.Time `json:"releaseDate"`
}
