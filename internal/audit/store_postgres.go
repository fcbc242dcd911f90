package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// PostgresStore persists audit entries in PostgreSQL. The table has no
// UPDATE or DELETE path anywhere in the codebase; append-only is a
// property of the code, enforced in review.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed audit store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	query := `
		INSERT INTO reputation_log (id, user_id, reason, delta, related_fact_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	var relatedFact any
	if entry.RelatedFactID != nil {
		relatedFact = uuid.UUID(*entry.RelatedFactID)
	}
	_, err := s.db.ExecContext(ctx, query,
		uuid.New(), uuid.UUID(entry.UserID), string(entry.Reason),
		entry.Delta, relatedFact, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID, page int) ([]Entry, error) {
	query := `
		SELECT user_id, reason, delta, related_fact_id, created_at
		FROM reputation_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID), PageSize, page*PageSize)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, PageSize)
	for rows.Next() {
		var entry Entry
		var uid uuid.UUID
		var relatedFact uuid.NullUUID
		if err := rows.Scan(&uid, &entry.Reason, &entry.Delta, &relatedFact, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.UserID = id.UserID(uid)
		if relatedFact.Valid {
			factID := id.FactID(relatedFact.UUID)
			entry.RelatedFactID = &factID
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
