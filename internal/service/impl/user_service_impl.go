package impl

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	"portfolio/internal/service"
	"portfolio/internal/store"
)

type UserServiceImpl struct {
	Store     *store.Store
	Passwords service.PasswordService
	Tokens    service.TokenService
}

func NewUserServiceImpl(st *store.Store, passwords service.PasswordService, tokens service.TokenService) *UserServiceImpl {
	return &UserServiceImpl{Store: st, Passwords: passwords, Tokens: tokens}
}

func (s *UserServiceImpl) Register(ctx context.Context, r dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	// Conflict only against live accounts; the unique index still backstops
	// the race between this check and the insert.
	existing, err := s.Store.Users().GetByEmail(ctx, r.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}

	hash, err := s.Passwords.Hash(r.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user := &domain.User{
		Email:    r.Email,
		Password: hash,
		Name:     r.Name,
		Status:   domain.StatusActive,
	}
	if err := s.Store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		return nil, err
	}

	return s.issue(ctx, user)
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, r dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	user, err := s.Store.Users().GetByEmail(ctx, r.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same signal as a bad password; don't leak which one failed.
			return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if !s.Passwords.Verify(r.Password, user.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	return s.issue(ctx, user)
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id domain.UserID) (*dto.UserResponse, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id domain.UserID, r dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.AvatarURL != nil {
		updates["avatar_url"] = *r.AvatarURL
	}
	user, err := s.Store.Users().UpdateProfile(ctx, id, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) SoftDelete(ctx context.Context, id domain.UserID) error {
	err := s.Store.Users().SoftDelete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	return err
}

func (s *UserServiceImpl) issue(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.Tokens.Issue(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:        dto.NewUserResponse(user),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
