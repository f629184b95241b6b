package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Theme is the open-ended style configuration of a portfolio (colors, font,
// border radius, ...). Stored as a JSON blob, not normalized columns.
type Theme map[string]any

func (t Theme) Value() (driver.Value, error) {
	if t == nil {
		t = Theme{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Theme) Scan(src any) error {
	return scanJSON(src, t, "theme")
}

// Section is one ordered, typed content block. Data is kept opaque: its shape
// depends on Type and is owned by the renderer, not the backend.
type Section struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Order   int             `json:"order"`
	Visible bool            `json:"visible"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type SectionList []Section

func (s SectionList) Value() (driver.Value, error) {
	if s == nil {
		s = SectionList{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SectionList) Scan(src any) error {
	return scanJSON(src, s, "sections")
}

func scanJSON(src, dst any, col string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported %s column type %T", col, src)
	}
}

type Portfolio struct {
	ID              PortfolioID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string      `gorm:"not null;index:ix_portfolios_slug_name,priority:2" json:"name"`
	Slug            string      `gorm:"not null;index:ix_portfolios_slug_name,priority:1" json:"slug"`
	Theme           Theme       `gorm:"type:jsonb" json:"theme"`
	Sections        SectionList `gorm:"type:jsonb" json:"sections"`
	Published       bool        `gorm:"not null;default:false" json:"published"`
	MetaTitle       *string     `json:"metaTitle"`
	MetaDescription *string     `json:"metaDescription"`
	Favicon         *string     `json:"favicon"`
	Views           int64       `gorm:"not null;default:0" json:"views"`
	Status          Status      `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	UserID          UserID      `gorm:"type:uuid;not null;index" json:"userId"`
	User            *User       `json:"user,omitempty"`
	CreatedAt       time.Time   `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updatedAt"`
	DeletedAt       *time.Time  `json:"deletedAt"`
}

func (Portfolio) TableName() string { return "portfolios" }

func (p *Portfolio) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
