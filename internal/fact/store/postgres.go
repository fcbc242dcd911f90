package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Veselin15/FactNode/internal/fact/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// PostgresStore persists facts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed fact store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, fact *models.Fact) error {
	query := `
		INSERT INTO facts (id, author_id, title, upvotes, downvotes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(fact.ID), uuid.UUID(fact.AuthorID), fact.Title,
		fact.Upvotes, fact.Downvotes, fact.CreatedAt, fact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save fact: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, factID id.FactID) (*models.Fact, error) {
	query := `
		SELECT id, author_id, title, upvotes, downvotes, created_at, updated_at
		FROM facts WHERE id = $1
	`
	var fact models.Fact
	var fid, authorID uuid.UUID
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(factID)).Scan(
		&fid, &authorID, &fact.Title, &fact.Upvotes, &fact.Downvotes,
		&fact.CreatedAt, &fact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find fact: %w", err)
	}
	fact.ID = id.FactID(fid)
	fact.AuthorID = id.UserID(authorID)
	return &fact, nil
}

func (s *PostgresStore) UpdateTallies(ctx context.Context, factID id.FactID, upvotes, downvotes int) error {
	query := `
		UPDATE facts SET upvotes = $2, downvotes = $3, updated_at = now()
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query, uuid.UUID(factID), upvotes, downvotes)
	if err != nil {
		return fmt.Errorf("update tallies: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tallies rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) GetTallies(ctx context.Context, factID id.FactID) (models.Tallies, error) {
	query := `SELECT upvotes, downvotes FROM facts WHERE id = $1`
	tallies := models.Tallies{FactID: factID}
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(factID)).Scan(&tallies.Upvotes, &tallies.Downvotes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tallies{}, ErrNotFound
		}
		return models.Tallies{}, fmt.Errorf("get tallies: %w", err)
	}
	return tallies, nil
}
