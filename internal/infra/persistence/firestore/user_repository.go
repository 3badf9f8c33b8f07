package firestore

import (
	"context"

	"gia/internal/domain/entity"
	"gia/internal/domain/repository"

	"github.com/pkg/errors"
)

const collectionUsers = "users"

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user profile repository backed by the record store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.store.Get(ctx, collectionUsers, id, &user); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}
	user.ID = id

	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	// The identity UID is the document key, so concurrent provisioning
	// attempts converge on a single document.
	return r.store.Set(ctx, collectionUsers, user.ID, user)
}

func (r *userRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, collectionUsers, id, fields); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return repository.ErrUserNotFound
		}

		return err
	}

	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	snaps, err := r.store.List(ctx, collectionUsers, limit, offset)
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(snaps))
	for _, snap := range snaps {
		var user entity.User
		if err := snap.DataTo(&user); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
		}
		user.ID = snap.Ref.ID
		users = append(users, user)
	}

	return users, nil
}
