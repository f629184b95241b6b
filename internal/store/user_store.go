package store

import (
	"context"
	"time"

	"portfolio/internal/domain"

	"github.com/google/uuid"
)

type UserStore struct{ store *Store }

func (s *Store) Users() *UserStore { return &UserStore{store: s} }

func (u *UserStore) Create(ctx context.Context, usr *domain.User) error {
	if usr.ID == uuid.Nil {
		usr.ID = uuid.New()
	}
	if usr.Status == "" {
		usr.Status = domain.StatusActive
	}
	return classify(u.store.DB.WithContext(ctx).Create(usr).Error)
}

// GetByID returns an active user. Soft-deleted rows are invisible here.
func (u *UserStore) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var user domain.User
	err := u.store.DB.WithContext(ctx).
		First(&user, "id = ? AND status = ?", id, domain.StatusActive).Error
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (u *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := u.store.DB.WithContext(ctx).
		First(&user, "email = ? AND status = ?", email, domain.StatusActive).Error
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// UpdateProfile applies a sparse column update and returns the fresh row.
func (u *UserStore) UpdateProfile(ctx context.Context, id domain.UserID, updates map[string]any) (*domain.User, error) {
	if len(updates) > 0 {
		res := u.store.DB.WithContext(ctx).Model(&domain.User{}).
			Where("id = ? AND status = ?", id, domain.StatusActive).
			Updates(updates)
		if res.Error != nil {
			return nil, classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrNotFound
		}
	}
	return u.GetByID(ctx, id)
}

// SoftDelete marks the user deleted. A second call finds no active row and
// reports NotFound rather than succeeding as a no-op.
func (u *UserStore) SoftDelete(ctx context.Context, id domain.UserID) error {
	res := u.store.DB.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND status = ?", id, domain.StatusActive).
		Updates(map[string]any{
			"status":     domain.StatusDeleted,
			"deleted_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
