package dto

import (
	"fmt"

	"portfolio/internal/domain"
)

type CreatePortfolioRequest struct {
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Theme           domain.Theme       `json:"theme,omitempty"`
	Sections        domain.SectionList `json:"sections,omitempty"`
	Published       bool               `json:"published,omitempty"`
	MetaTitle       *string            `json:"metaTitle,omitempty"`
	MetaDescription *string            `json:"metaDescription,omitempty"`
}

func (r CreatePortfolioRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := domain.ValidateSlug(r.Slug); err != nil {
		return err
	}
	return domain.ValidateSections(r.Sections)
}

// UpdatePortfolioRequest is a sparse update: nil means "leave untouched".
// A supplied sections list replaces the stored one wholesale.
type UpdatePortfolioRequest struct {
	Name            *string             `json:"name,omitempty"`
	Slug            *string             `json:"slug,omitempty"`
	Theme           *domain.Theme       `json:"theme,omitempty"`
	Sections        *domain.SectionList `json:"sections,omitempty"`
	Published       *bool               `json:"published,omitempty"`
	MetaTitle       *string             `json:"metaTitle,omitempty"`
	MetaDescription *string             `json:"metaDescription,omitempty"`
	Favicon         *string             `json:"favicon,omitempty"`
}

func (r UpdatePortfolioRequest) Validate() error {
	if r.Slug != nil && *r.Slug != "" {
		if err := domain.ValidateSlug(*r.Slug); err != nil {
			return err
		}
	}
	if r.Sections != nil {
		return domain.ValidateSections(*r.Sections)
	}
	return nil
}
