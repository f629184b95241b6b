package service

import (
	"context"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
)

type PortfolioService interface {
	Create(ctx context.Context, ownerID domain.UserID, r dto.CreatePortfolioRequest) (*domain.Portfolio, error)
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]domain.Portfolio, error)

	// GetByID does not check caller identity; callers own that decision.
	GetByID(ctx context.Context, id domain.PortfolioID) (*domain.Portfolio, error)

	// GetPublicByLookupKey increments the view counter on every successful
	// match, published or not. Publish gating is the caller's responsibility.
	GetPublicByLookupKey(ctx context.Context, slug, name string) (*domain.Portfolio, error)

	Update(ctx context.Context, id domain.PortfolioID, ownerID domain.UserID, r dto.UpdatePortfolioRequest) (*domain.Portfolio, error)
	Delete(ctx context.Context, id domain.PortfolioID, ownerID domain.UserID) (*domain.Portfolio, error)
	TogglePublish(ctx context.Context, id domain.PortfolioID, ownerID domain.UserID) (*domain.Portfolio, error)
}
