// Package domain holds typed identifiers shared across the service.
//
// IDs are distinct types over uuid.UUID so a FactID can never be passed
// where a UserID is expected. Parsing happens once, at trust boundaries
// (HTTP handlers, message consumers); everything below works with the
// typed values.
package domain

import (
	"github.com/google/uuid"

	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// UserID identifies a platform user (voter or fact author).
type UserID uuid.UUID

// FactID identifies a votable fact.
type FactID uuid.UUID

// NotificationID identifies a stored notification.
type NotificationID uuid.UUID

// ParseUserID validates and converts a string into a UserID.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

// ParseFactID validates and converts a string into a FactID.
func ParseFactID(s string) (FactID, error) {
	u, err := parseUUID(s, "fact id")
	return FactID(u), err
}

// ParseNotificationID validates and converts a string into a NotificationID.
func ParseNotificationID(s string) (NotificationID, error) {
	u, err := parseUUID(s, "notification id")
	return NotificationID(u), err
}

// parseUUID enforces the shared invariant: IDs must be valid, non-nil UUIDs.
func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" must not be the nil UUID")
	}
	return u, nil
}

func (id UserID) String() string         { return uuid.UUID(id).String() }
func (id FactID) String() string         { return uuid.UUID(id).String() }
func (id NotificationID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id FactID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id NotificationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// NewUserID returns a fresh random UserID. Used by tests and seeders.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewFactID returns a fresh random FactID.
func NewFactID() FactID { return FactID(uuid.New()) }

// NewNotificationID returns a fresh random NotificationID.
func NewNotificationID() NotificationID { return NotificationID(uuid.New()) }
