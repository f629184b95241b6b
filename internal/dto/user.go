package dto

import (
	"fmt"
	"strings"
	"time"

	"portfolio/internal/domain"
)

type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

func (r RegisterRequest) Validate() error {
	if !looksLikeEmail(r.Email) {
		return fmt.Errorf("%w: email must be a valid email address", domain.ErrValidation)
	}
	if len(r.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if !looksLikeEmail(r.Email) {
		return fmt.Errorf("%w: email must be a valid email address", domain.ErrValidation)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return nil
}

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	if r.AvatarURL != nil && *r.AvatarURL != "" && !strings.Contains(*r.AvatarURL, "://") {
		return fmt.Errorf("%w: avatarUrl must be a URL", domain.ErrValidation)
	}
	return nil
}

// UserResponse is the only outward shape for a user. The password never
// appears here, so serialization discipline is structural, not by convention.
type UserResponse struct {
	ID        domain.UserID `json:"id"`
	Email     string        `json:"email"`
	Name      *string       `json:"name"`
	AvatarURL *string       `json:"avatarUrl"`
	Status    domain.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	DeletedAt *time.Time    `json:"deletedAt"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}

type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int64        `json:"expiresIn"`
}

func looksLikeEmail(s string) bool {
	at := strings.IndexRune(s, '@')
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
