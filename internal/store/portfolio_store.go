package store

import (
	"context"
	"time"

	"portfolio/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortfolioStore struct{ store *Store }

func (s *Store) Portfolios() *PortfolioStore { return &PortfolioStore{store: s} }

func (p *PortfolioStore) Create(ctx context.Context, pf *domain.Portfolio) error {
	if pf.ID == uuid.Nil {
		pf.ID = uuid.New()
	}
	if pf.Status == "" {
		pf.Status = domain.StatusActive
	}
	if pf.Theme == nil {
		pf.Theme = domain.Theme{}
	}
	if pf.Sections == nil {
		pf.Sections = domain.SectionList{}
	}
	return classify(p.store.DB.WithContext(ctx).Create(pf).Error)
}

// ListByOwner returns the owner's active portfolios, most recently updated
// first.
func (p *PortfolioStore) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]domain.Portfolio, error) {
	var out []domain.Portfolio
	err := p.store.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", ownerID, domain.StatusActive).
		Order("updated_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// GetByID returns an active portfolio with a minimal owner projection
// (id, name, email). Ownership is the caller's concern, not this query's.
func (p *PortfolioStore) GetByID(ctx context.Context, id domain.PortfolioID) (*domain.Portfolio, error) {
	var pf domain.Portfolio
	err := p.store.DB.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		First(&pf, "id = ? AND status = ?", id, domain.StatusActive).Error
	if err != nil {
		return nil, classify(err)
	}
	return &pf, nil
}

// GetBySlugAndName resolves the public lookup key. Publish gating happens in
// the transport layer; this returns the entity regardless of the flag.
func (p *PortfolioStore) GetBySlugAndName(ctx context.Context, slug, name string) (*domain.Portfolio, error) {
	var pf domain.Portfolio
	err := p.store.DB.WithContext(ctx).
		First(&pf, "slug = ? AND name = ? AND status = ?", slug, name, domain.StatusActive).Error
	if err != nil {
		return nil, classify(err)
	}
	return &pf, nil
}

// IncrementViews bumps the counter in a single UPDATE so concurrent public
// lookups cannot lose increments.
func (p *PortfolioStore) IncrementViews(ctx context.Context, id domain.PortfolioID) error {
	return classify(p.store.DB.WithContext(ctx).Model(&domain.Portfolio{}).
		Where("id = ? AND status = ?", id, domain.StatusActive).
		UpdateColumn("views", gorm.Expr("views + 1")).Error)
}

// Update applies a sparse column update and returns the fresh row.
func (p *PortfolioStore) Update(ctx context.Context, id domain.PortfolioID, updates map[string]any) (*domain.Portfolio, error) {
	if len(updates) > 0 {
		res := p.store.DB.WithContext(ctx).Model(&domain.Portfolio{}).
			Where("id = ? AND status = ?", id, domain.StatusActive).
			Updates(updates)
		if res.Error != nil {
			return nil, classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrNotFound
		}
	}
	return p.GetByID(ctx, id)
}

// SoftDelete marks the portfolio deleted and returns the deleted record so
// callers observe the tombstoned row, not an empty response.
func (p *PortfolioStore) SoftDelete(ctx context.Context, id domain.PortfolioID) (*domain.Portfolio, error) {
	now := time.Now().UTC()
	res := p.store.DB.WithContext(ctx).Model(&domain.Portfolio{}).
		Where("id = ? AND status = ?", id, domain.StatusActive).
		Updates(map[string]any{
			"status":     domain.StatusDeleted,
			"deleted_at": now,
		})
	if res.Error != nil {
		return nil, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	var pf domain.Portfolio
	if err := p.store.DB.WithContext(ctx).First(&pf, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &pf, nil
}

// TogglePublish flips the flag in one UPDATE expression; there is no
// read-modify-write window for concurrent togglers to race through.
func (p *PortfolioStore) TogglePublish(ctx context.Context, id domain.PortfolioID) (*domain.Portfolio, error) {
	res := p.store.DB.WithContext(ctx).Model(&domain.Portfolio{}).
		Where("id = ? AND status = ?", id, domain.StatusActive).
		Update("published", gorm.Expr("NOT published"))
	if res.Error != nil {
		return nil, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return p.GetByID(ctx, id)
}
