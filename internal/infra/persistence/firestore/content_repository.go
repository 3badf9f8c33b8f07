package firestore

import (
	"context"

	"gia/internal/domain/entity"
	"gia/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	collectionBlogPosts    = "blog_posts"
	collectionMagazines    = "magazines"
	collectionApplications = "work_with_us_applications"
)

type blogRepository struct {
	store *Store
}

// NewBlogRepository creates a blog post repository backed by the record store.
func NewBlogRepository(store *Store) repository.BlogRepository {
	return &blogRepository{store: store}
}

func (r *blogRepository) FindByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	var post entity.BlogPost
	if err := r.store.Get(ctx, collectionBlogPosts, id, &post); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, err
	}
	post.ID = id

	return &post, nil
}

func (r *blogRepository) Create(ctx context.Context, post *entity.BlogPost) (string, error) {
	return r.store.Add(ctx, collectionBlogPosts, post)
}

func (r *blogRepository) List(ctx context.Context, limit, offset int) ([]entity.BlogPost, error) {
	snaps, err := r.store.List(ctx, collectionBlogPosts, limit, offset)
	if err != nil {
		return nil, err
	}

	posts := make([]entity.BlogPost, 0, len(snaps))
	for _, snap := range snaps {
		var post entity.BlogPost
		if err := snap.DataTo(&post); err != nil {
			return nil, errors.Wrapf(err, "failed to decode blog post %s", snap.Ref.ID)
		}
		post.ID = snap.Ref.ID
		posts = append(posts, post)
	}

	return posts, nil
}

type magazineRepository struct {
	store *Store
}

// NewMagazineRepository creates a magazine repository backed by the record store.
func NewMagazineRepository(store *Store) repository.MagazineRepository {
	return &magazineRepository{store: store}
}

func (r *magazineRepository) Create(ctx context.Context, magazine *entity.Magazine) (string, error) {
	return r.store.Add(ctx, collectionMagazines, magazine)
}

func (r *magazineRepository) List(ctx context.Context, limit, offset int) ([]entity.Magazine, error) {
	snaps, err := r.store.List(ctx, collectionMagazines, limit, offset)
	if err != nil {
		return nil, err
	}

	magazines := make([]entity.Magazine, 0, len(snaps))
	for _, snap := range snaps {
		var magazine entity.Magazine
		if err := snap.DataTo(&magazine); err != nil {
			return nil, errors.Wrapf(err, "failed to decode magazine %s", snap.Ref.ID)
		}
		magazine.ID = snap.Ref.ID
		magazines = append(magazines, magazine)
	}

	return magazines, nil
}

type applicationRepository struct {
	store *Store
}

// NewApplicationRepository creates a work-with-us application repository
// backed by the record store.
func NewApplicationRepository(store *Store) repository.ApplicationRepository {
	return &applicationRepository{store: store}
}

func (r *applicationRepository) Create(ctx context.Context, application *entity.Application) (string, error) {
	return r.store.Add(ctx, collectionApplications, application)
}
