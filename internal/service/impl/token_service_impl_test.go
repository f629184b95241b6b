package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/internal/domain"

	"github.com/google/uuid"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Issuer:     "http://localhost:3002",
		Audience:   "portfolio-client",
		AccessTTL:  time.Hour,
		SigningKey: []byte("test-secret"),
	}
}

func TestTokenIssueAndVerify(t *testing.T) {
	svc := NewTokenServiceHS256(testTokenConfig())
	user := &domain.User{ID: uuid.New(), Email: "jane@example.com"}

	token, expiresIn, err := svc.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expected expiresIn 3600, got %d", expiresIn)
	}

	sub, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, sub)
	}
}

func TestTokenRejectsWrongKey(t *testing.T) {
	issuer := NewTokenServiceHS256(testTokenConfig())
	user := &domain.User{ID: uuid.New(), Email: "jane@example.com"}
	token, _, err := issuer.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := testTokenConfig()
	other.SigningKey = []byte("different-secret")
	if _, err := NewTokenServiceHS256(other).Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTokenRejectsIssuerMismatch(t *testing.T) {
	cfg := testTokenConfig()
	issuer := NewTokenServiceHS256(cfg)
	user := &domain.User{ID: uuid.New()}
	token, _, err := issuer.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cfg.Issuer = "http://somewhere-else"
	if _, err := NewTokenServiceHS256(cfg).Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	cfg := testTokenConfig()
	cfg.AccessTTL = -time.Minute
	svc := NewTokenServiceHS256(cfg)
	user := &domain.User{ID: uuid.New()}
	token, _, err := svc.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenServiceHS256(testTokenConfig())
	if _, err := svc.Verify("not.a.jwt"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
