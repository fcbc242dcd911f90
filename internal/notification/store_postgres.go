package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// PostgresStore persists notifications in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed notification store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, n Notification) error {
	var target []byte
	if n.Target != nil {
		var err error
		target, err = json.Marshal(n.Target)
		if err != nil {
			return fmt.Errorf("marshal notification target: %w", err)
		}
	}
	query := `
		INSERT INTO notifications (id, recipient_id, type, title, message, target, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(n.ID), uuid.UUID(n.RecipientID), string(n.Type),
		n.Title, n.Message, target, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save notification: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByRecipient(ctx context.Context, recipientID id.UserID) ([]Notification, error) {
	query := `
		SELECT id, recipient_id, type, title, message, target, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY is_read ASC, created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(recipientID))
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []Notification
	for rows.Next() {
		var n Notification
		var nid, rid uuid.UUID
		var target []byte
		if err := rows.Scan(&nid, &rid, &n.Type, &n.Title, &n.Message, &target, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.ID = id.NotificationID(nid)
		n.RecipientID = id.UserID(rid)
		if len(target) > 0 {
			var ref TargetRef
			if err := json.Unmarshal(target, &ref); err != nil {
				return nil, fmt.Errorf("unmarshal notification target: %w", err)
			}
			n.Target = &ref
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return list, nil
}

func (s *PostgresStore) MarkRead(ctx context.Context, recipientID id.UserID, notificationID id.NotificationID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_id = $2`,
		uuid.UUID(notificationID), uuid.UUID(recipientID),
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark notification read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
