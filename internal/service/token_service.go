package service

import (
	"context"

	"portfolio/internal/domain"
)

type TokenService interface {
	// Issue returns a signed access token and its lifetime in seconds.
	Issue(ctx context.Context, user *domain.User) (token string, expiresIn int64, err error)

	// Verify validates the token and returns the subject user ID.
	Verify(token string) (domain.UserID, error)
}
