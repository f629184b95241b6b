package impl

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenConfig struct {
	Issuer     string
	Audience   string
	AccessTTL  time.Duration // e.g. 24h
	SigningKey []byte        // HS256 secret
}

type AccessClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenServiceImpl issues and verifies HS256 access tokens. There is no
// session table: the token is the whole credential, bounded by AccessTTL.
type TokenServiceImpl struct {
	cfg TokenConfig
}

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{cfg: cfg}
}

func (t *TokenServiceImpl) Issue(_ context.Context, user *domain.User) (string, int64, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.cfg.SigningKey)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(t.cfg.AccessTTL.Seconds()), nil
}

func (t *TokenServiceImpl) Verify(tokenStr string) (domain.UserID, error) {
	claims := &AccessClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.cfg.SigningKey, nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if claims.Issuer != t.cfg.Issuer {
		return uuid.Nil, fmt.Errorf("%w: bad issuer", domain.ErrUnauthorized)
	}
	if !containsAudience(claims.Audience, t.cfg.Audience) {
		return uuid.Nil, fmt.Errorf("%w: bad audience", domain.ErrUnauthorized)
	}
	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", domain.ErrUnauthorized)
	}
	return sub, nil
}

func containsAudience(aud jwt.ClaimStrings, expected string) bool {
	for _, a := range aud {
		if a == expected {
			return true
		}
	}
	return false
}
