package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Veselin15/FactNode/internal/vote/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// PostgresStore persists votes in PostgreSQL. The unique constraint on
// (voter_id, fact_id) makes Upsert safe against concurrent first-votes
// from the same voter.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed vote store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Upsert(ctx context.Context, vote *models.Vote) (bool, error) {
	// xmax = 0 is true only for freshly inserted rows, which is how we
	// distinguish a create from a direction change in one round trip.
	query := `
		INSERT INTO votes (voter_id, fact_id, direction, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (voter_id, fact_id) DO UPDATE SET
			direction = EXCLUDED.direction,
			updated_at = now()
		RETURNING (xmax = 0), created_at, updated_at
	`
	var created bool
	err := s.db.QueryRowContext(ctx, query,
		uuid.UUID(vote.VoterID), uuid.UUID(vote.FactID), string(vote.Direction),
	).Scan(&created, &vote.CreatedAt, &vote.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("upsert vote: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) Delete(ctx context.Context, voterID id.UserID, factID id.FactID) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM votes WHERE voter_id = $1 AND fact_id = $2`,
		uuid.UUID(voterID), uuid.UUID(factID),
	)
	if err != nil {
		return false, fmt.Errorf("delete vote: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete vote rows affected: %w", err)
	}
	return rows > 0, nil
}

func (s *PostgresStore) Find(ctx context.Context, voterID id.UserID, factID id.FactID) (*models.Vote, error) {
	query := `
		SELECT direction, created_at, updated_at
		FROM votes WHERE voter_id = $1 AND fact_id = $2
	`
	vote := models.Vote{VoterID: voterID, FactID: factID}
	var direction string
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(voterID), uuid.UUID(factID)).
		Scan(&direction, &vote.CreatedAt, &vote.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find vote: %w", err)
	}
	vote.Direction = models.Direction(direction)
	return &vote, nil
}

func (s *PostgresStore) CountByDirection(ctx context.Context, factID id.FactID) (int, int, error) {
	query := `
		SELECT
			count(*) FILTER (WHERE direction = 'UP'),
			count(*) FILTER (WHERE direction = 'DOWN')
		FROM votes WHERE fact_id = $1
	`
	var up, down int
	if err := s.db.QueryRowContext(ctx, query, uuid.UUID(factID)).Scan(&up, &down); err != nil {
		return 0, 0, fmt.Errorf("count votes: %w", err)
	}
	return up, down, nil
}
