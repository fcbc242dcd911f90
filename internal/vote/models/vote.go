package models

import (
	"strings"
	"time"

	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// Direction is the polarity of a vote.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// ParseDirection validates a wire value into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "direction must be UP or DOWN")
	}
}

// Vote is one user's vote on one fact. At most one row exists per
// (voter, fact); casting again replaces the direction in place.
type Vote struct {
	VoterID   id.UserID
	FactID    id.FactID
	Direction Direction
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Changed describes a committed mutation of the vote ledger. It is
// dispatched synchronously to the downstream handlers in a fixed
// order: tallies first, then reputation.
type Changed struct {
	FactID  id.FactID
	VoterID id.UserID
	// Direction the vote holds after the mutation. Unset for retractions.
	Direction Direction
	// Created is true only when a brand new vote row was inserted.
	// Direction changes and retractions report false, which is what
	// keeps reputation deltas tied to first votes only.
	Created bool
}
