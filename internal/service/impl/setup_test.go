package impl

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Portfolio{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return store.New(db)
}

func setupServices(t *testing.T) (*UserServiceImpl, *PortfolioServiceImpl, *store.Store) {
	t.Helper()

	st := setupStore(t)
	pw := NewPasswordServiceArgon2id()
	ts := NewTokenServiceHS256(TokenConfig{
		Issuer:     "http://localhost:3002",
		Audience:   "portfolio-client",
		AccessTTL:  time.Hour,
		SigningKey: []byte("test-secret"),
	})
	return NewUserServiceImpl(st, pw, ts), NewPortfolioServiceImpl(st), st
}
