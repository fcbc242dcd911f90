package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// PostgresStore persists reputation totals in the profiles table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed reputation store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// AddScore applies the delta with SQL arithmetic so the read-modify-
// write happens inside the database. Concurrent adds serialize on the
// row lock and each caller sees its own consistent post-add total.
func (s *PostgresStore) AddScore(ctx context.Context, userID id.UserID, delta int) (int, error) {
	query := `
		INSERT INTO profiles (user_id, reputation_score, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET
			reputation_score = profiles.reputation_score + EXCLUDED.reputation_score,
			updated_at = now()
		RETURNING reputation_score
	`
	var total int
	if err := s.db.QueryRowContext(ctx, query, uuid.UUID(userID), delta).Scan(&total); err != nil {
		return 0, fmt.Errorf("add reputation score: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) Get(ctx context.Context, userID id.UserID) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT reputation_score FROM profiles WHERE user_id = $1`,
		uuid.UUID(userID),
	).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get reputation score: %w", err)
	}
	return total, nil
}
