package impl

import (
	"context"
	"log/slog"
	"time"

	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/repository"
	"gia/internal/usecase"

	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	blogRepo     repository.BlogRepository
	magazineRepo repository.MagazineRepository
	logger       *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	blogRepo repository.BlogRepository,
	magazineRepo repository.MagazineRepository,
	logger *slog.Logger,
) usecase.ContentUsecase {
	return &contentService{
		blogRepo:     blogRepo,
		magazineRepo: magazineRepo,
		logger:       logger,
	}
}

// ListPosts returns published posts only; drafts never leave the store's
// read path.
func (srv *contentService) ListPosts(ctx context.Context, limit, offset int) ([]entity.BlogPost, error) {
	posts, err := srv.blogRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	published := make([]entity.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.Published {
			published = append(published, post)
		}
	}

	return published, nil
}

// GetPost returns a published post. An unpublished post reads the same as a
// missing one, so callers cannot probe for drafts.
func (srv *contentService) GetPost(ctx context.Context, id string) (*entity.BlogPost, error) {
	post, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("blog post not found")
		}

		return nil, errors.Wrap(err, "failed to find blog post")
	}

	if !post.Published {
		return nil, domainerrors.ErrNotFound.WrapMessage("blog post not found")
	}

	return post, nil
}

func (srv *contentService) CreatePost(ctx context.Context, caller *entity.User, input *usecase.BlogPostInput) (*entity.BlogPost, error) {
	if !caller.Role.Privileged() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only artists can author posts")
	}

	now := time.Now()
	post := &entity.BlogPost{
		Title:         input.Title,
		Content:       input.Content,
		Category:      input.Category,
		FeaturedImage: input.FeaturedImage,
		Images:        input.Images,
		Published:     input.Published,
		Author:        caller.Name,
		AuthorID:      caller.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := srv.blogRepo.Create(ctx, post)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create blog post")
	}
	post.ID = id

	srv.logger.Info("blog post created", "postID", id, "authorID", caller.ID, "published", input.Published)

	return post, nil
}

func (srv *contentService) ListMagazines(ctx context.Context, limit, offset int) ([]entity.Magazine, error) {
	magazines, err := srv.magazineRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list magazines")
	}

	return magazines, nil
}

func (srv *contentService) PublishMagazine(ctx context.Context, input *usecase.MagazineInput) (*entity.Magazine, error) {
	releaseDate := input.ReleaseDate
	if releaseDate.IsZero() {
		releaseDate = time.Now()
	}

	magazine := &entity.Magazine{
		Issue:       input.Issue,
		Title:       input.Title,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Content:     input.Content,
		Articles:    input.Articles,
		ReleaseDate: releaseDate,
		CreatedAt:   time.Now(),
	}

	id, err := srv.magazineRepo.Create(ctx, magazine)
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish magazine")
	}
	magazine.ID = id

	srv.logger.Info("magazine published", "magazineID", id, "issue", input.Issue)

	return magazine, nil
}
