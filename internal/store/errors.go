package store

import (
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// classify maps a gorm/driver failure onto the domain taxonomy. Every store
// method returns through here so services never see raw driver errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: duplicate unique key", domain.ErrConflict)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// SQLSTATE class reference: postgresql.org/docs/current/errcodes-appendix.html
		switch {
		case pgErr.SQLState() == "23505":
			return fmt.Errorf("%w: duplicate unique key", domain.ErrConflict)
		case strings.HasPrefix(pgErr.SQLState(), "08"), pgErr.SQLState() == "57014":
			return fmt.Errorf("%w: %s", domain.ErrUpstream, pgErr.SQLState())
		}
	}

	// sqlite (test driver) reports constraint failures as plain strings.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: duplicate unique key", domain.ErrConflict)
	}

	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}
