package audit

import (
	"time"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// Reason explains why a reputation total changed. Entries carry the
// reason so the total can be recomputed or disputed later.
type Reason string

const (
	ReasonVoteReceived Reason = "VOTE_RECEIVED"

	// Reserved for the moderation subsystem, which appends through the
	// same service when fact status changes affect reputation.
	ReasonFactApproved Reason = "FACT_APPROVED"
	ReasonFactRejected Reason = "FACT_REJECTED"
	ReasonVoteGiven    Reason = "VOTE_GIVEN"
	ReasonBonus        Reason = "BONUS"
)

// Entry is one immutable reputation change record. Entries are only
// ever appended, never mutated or deleted.
type Entry struct {
	UserID        id.UserID
	Reason        Reason
	Delta         int
	RelatedFactID *id.FactID
	Timestamp     time.Time
}
