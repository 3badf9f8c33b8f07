package impl

import (
	"context"
	"testing"

	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	mockRepo "gia/internal/mocks/repository"
	"gia/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contentServiceFixtures holds all test dependencies for content service tests.
type contentServiceFixtures struct {
	service      usecase.ContentUsecase
	blogRepo     *mockRepo.MockBlogRepository
	magazineRepo *mockRepo.MockMagazineRepository
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	blogRepo := mockRepo.NewMockBlogRepository(t)
	magazineRepo := mockRepo.NewMockMagazineRepository(t)
	svc := NewContentService(blogRepo, magazineRepo, newDiscardLogger())

	return contentServiceFixtures{
		service:      svc,
		blogRepo:     blogRepo,
		magazineRepo: magazineRepo,
	}
}

func TestContentService_ListPosts_PublishedOnly(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()

	fx.blogRepo.EXPECT().
		List(ctx, 0, 0).
		Return([]entity.BlogPost{
			{ID: "b1", Published: true},
			{ID: "b2", Published: false},
			{ID: "b3", Published: true},
		}, nil)

	posts, err := fx.service.ListPosts(ctx, 0, 0)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "b1", posts[0].ID)
	assert.Equal(t, "b3", posts[1].ID)
}

func TestContentService_GetPost_UnpublishedReadsAsMissing(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()

	fx.blogRepo.EXPECT().
		FindByID(ctx, "draft-1").
		Return(&entity.BlogPost{ID: "draft-1", Published: false}, nil)

	_, err := fx.service.GetPost(ctx, "draft-1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestContentService_CreatePost_ForbiddenForRegularUser(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "uid-1", Role: entity.RoleUser}

	_, err := fx.service.CreatePost(ctx, caller, &usecase.BlogPostInput{
		Title:    "Story",
		Content:  "Body",
		Category: "craft",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestContentService_CreatePost_AuthorTakenFromCaller(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "artist-1", Name: "Asha Rao", Role: entity.RoleArtist}

	fx.blogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BlogPost")).
		Run(func(ctx context.Context, post *entity.BlogPost) {
			assert.Equal(t, "artist-1", post.AuthorID)
			assert.Equal(t, "Asha Rao", post.Author)
		}).
		Return("b1", nil)

	post, err := fx.service.CreatePost(ctx, caller, &usecase.BlogPostInput{
		Title:     "Story",
		Content:   "Body",
		Category:  "craft",
		Published: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", post.ID)
}

func TestContentService_PublishMagazine_DefaultsReleaseDate(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()

	fx.magazineRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Magazine")).
		Run(func(ctx context.Context, magazine *entity.Magazine) {
			assert.False(t, magazine.ReleaseDate.IsZero())
		}).
		Return("m1", nil)

	magazine, err := fx.service.PublishMagazine(ctx, &usecase.MagazineInput{
		Issue: 4,
		Title: "Summer Issue",
	})

	require.NoError(t, err)
	assert.Equal(t, "m1", magazine.ID)
	assert.Equal(t, 4, magazine.Issue)
}
