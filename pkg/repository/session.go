package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
)

// SessionRepository stores the single currently logged in user.
type SessionRepository struct {
	store storage.Store
}

var _ Sessions = (*SessionRepository)(nil)

func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Current returns the logged in user. If nobody is logged in,
// models.ErrUnauthorized is returned.
func (r *SessionRepository) Current(ctx context.Context) (models.User, error) {
	user, err := storage.ReadObject[models.User](ctx, r.store, keySession)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.User{}, models.ErrUnauthorized
	} else if err != nil {
		return models.User{}, err
	}

	if user.ID == "" {
		return models.User{}, fmt.Errorf("%w, the stored session has no user ID", models.ErrUnauthorized)
	}

	return user, nil
}

func (r *SessionRepository) Save(ctx context.Context, user models.User) error {
	return storage.WriteObject(ctx, r.store, keySession, user)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, keySession)
}
