package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        UserID     `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string     `gorm:"not null;uniqueIndex:ux_users_email" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Name      *string    `json:"name"`
	AvatarURL *string    `json:"avatarUrl"`
	Status    Status     `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null" json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
