package service

import (
	"context"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
)

type UserService interface {
	Register(ctx context.Context, r dto.RegisterRequest) (*dto.AuthResponse, error)
	Authenticate(ctx context.Context, r dto.LoginRequest) (*dto.AuthResponse, error)
	GetByID(ctx context.Context, id domain.UserID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id domain.UserID, r dto.UpdateProfileRequest) (*dto.UserResponse, error)
	SoftDelete(ctx context.Context, id domain.UserID) error
}
