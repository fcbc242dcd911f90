package models

import (
	"time"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// Fact is the votable entity. Moderation (draft/pending/approved) is
// owned by an external subsystem; the core only needs authorship and
// the cached tallies.
type Fact struct {
	ID       id.FactID
	AuthorID id.UserID
	Title    string

	// Cached counters. These are a materialized view over the vote
	// rows, rewritten in full by the tally aggregator. Nothing else
	// may increment them.
	Upvotes   int
	Downvotes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Score is the net tally. Derived, never stored.
func (f Fact) Score() int { return f.Upvotes - f.Downvotes }

// Tallies is the read model returned to collaborators.
type Tallies struct {
	FactID    id.FactID
	Upvotes   int
	Downvotes int
}

// Score returns upvotes minus downvotes.
func (t Tallies) Score() int { return t.Upvotes - t.Downvotes }
