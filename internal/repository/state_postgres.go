package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

const pqUndefinedTable = "42P01"

type postgresStateRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresStateRepository(db *sql.DB, logger *logrus.Logger) domain.StateStore {
	return &postgresStateRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresStateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM client_state WHERE key = $1`
	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Debugf("Repository: no persisted state for key '%s'", key)
			return nil, domain.ErrStateNotFound
		}
		r.log.Errorf("Repository: failed to load state '%s': %v", key, err)
		return nil, wrapPQ(fmt.Sprintf("could not load state %s", key), err)
	}
	return []byte(value), nil
}

func (r *postgresStateRepository) Save(ctx context.Context, key string, value []byte) error {
	query := `
        INSERT INTO client_state (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, key, string(value)); err != nil {
		r.log.Errorf("Repository: failed to save state '%s': %v", key, err)
		return wrapPQ(fmt.Sprintf("could not save state %s", key), err)
	}
	r.log.Debugf("Repository: saved state '%s' (%d bytes)", key, len(value))
	return nil
}

func (r *postgresStateRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM client_state WHERE key = $1`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		r.log.Errorf("Repository: failed to delete state '%s': %v", key, err)
		return wrapPQ(fmt.Sprintf("could not delete state %s", key), err)
	}
	return nil
}

func wrapPQ(msg string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
		return fmt.Errorf("%s: client_state table is missing, run migrations: %w", msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
