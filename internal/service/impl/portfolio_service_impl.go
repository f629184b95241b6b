package impl

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	"portfolio/internal/store"
)

type PortfolioServiceImpl struct {
	Store *store.Store
}

func NewPortfolioServiceImpl(st *store.Store) *PortfolioServiceImpl {
	return &PortfolioServiceImpl{Store: st}
}

func (s *PortfolioServiceImpl) Create(ctx context.Context, ownerID domain.UserID, r dto.CreatePortfolioRequest) (*domain.Portfolio, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	pf := &domain.Portfolio{
		Name:            r.Name,
		Slug:            r.Slug,
		Theme:           r.Theme,
		Sections:        r.Sections,
		Published:       r.Published,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		UserID:          ownerID,
		Status:          domain.StatusActive,
	}
	if err := s.Store.Portfolios().Create(ctx, pf); err != nil {
		return nil, err
	}
	return pf, nil
}

func (s *PortfolioServiceImpl) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]domain.Portfolio, error) {
	return s.Store.Portfolios().ListByOwner(ctx, ownerID)
}

func (s *PortfolioServiceImpl) GetByID(ctx context.Context, id domain.PortfolioID) (*domain.Portfolio, error) {
	pf, err := s.Store.Portfolios().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: portfolio not found", domain.ErrNotFound)
		}
		return nil, err
	}
	return pf, nil
}

func (s *PortfolioServiceImpl) GetPublicByLookupKey(ctx context.Context, slug, name string) (*domain.Portfolio, error) {
	pf, err := s.Store.Portfolios().GetBySlugAndName(ctx, slug, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: portfolio not found", domain.ErrNotFound)
		}
		return nil, err
	}
	// Counts before the publish check: an unpublished hit still registers.
	if err := s.Store.Portfolios().IncrementViews(ctx, pf.ID); err != nil {
		return nil, err
	}
	pf.Views++
	return pf, nil
}

func (s *PortfolioServiceImpl) Update(ctx context.Context, id domain.PortfolioID, ownerID domain.UserID, r dto.UpdatePortfolioRequest) (*domain.Portfolio, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if r.Name != nil && *r.Name != "" {
		updates["name"] = *r.Name
	}
	if r.Slug != nil && *r.Slug != "" {
		updates["slug"] = *r.Slug
	}
	if r.Theme != nil {
		updates["theme"] = *r.Theme
	}
	if r.Sections != nil {
		updates["sections"] = *r.Sections
	}
	if r.Published != nil {
		updates["published"] = *r.Published
	}
	if r.MetaTitle != nil {
		updates["meta_title"] = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		updates["meta_description"] = *r.MetaDescription
	}
	if r.Favicon != nil {
		updates["favicon"] = *r.Favicon
	}
	return s.Store.Portfolios().Update(ctx, id, updates)
}

func (s *PortfolioServiceImpl) Delete(ctx context.Context, id domain.PortfolioID, ownerID domain.UserID) (*domain.Portfolio, error) {
	if _, err := s.loadOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return s.Store.Portfolios().SoftDelete(ctx, id)
}

func (s *PortfolioServiceImpl) TogglePublish(ctx context.Context, id domain.PortfolioID, ownerID domain.UserID) (*domain.Portfolio, error) {
	if _, err := s.loadOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return s.Store.Portfolios().TogglePublish(ctx, id)
}

// loadOwned fetches the portfolio and enforces ownership. Someone else's
// portfolio answers Forbidden, never the entity.
func (s *PortfolioServiceImpl) loadOwned(ctx context.Context, id domain.PortfolioID, ownerID domain.UserID) (*domain.Portfolio, error) {
	pf, err := s.Store.Portfolios().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: portfolio not found", domain.ErrNotFound)
		}
		return nil, err
	}
	if pf.UserID != ownerID {
		return nil, fmt.Errorf("%w: you do not have permission to modify this portfolio", domain.ErrForbidden)
	}
	return pf, nil
}
