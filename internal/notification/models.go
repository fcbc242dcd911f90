package notification

import (
	"time"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// Type categorizes a notification for display.
type Type string

const (
	TypeSystem        Type = "SYSTEM"
	TypeRankUp        Type = "RANK_UP"
	TypeFactApproved  Type = "FACT_APPROVED"
	TypeFactRejected  Type = "FACT_REJECTED"
	TypeAchievement   Type = "ACHIEVEMENT"
	TypeVoteMilestone Type = "VOTE_MILESTONE"
)

// TargetRef is a tagged reference to the entity a notification is
// about. The consumer resolves {Kind, ID} itself; there is no typed
// foreign key into another table.
type TargetRef struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// Notification is one message for one recipient. Created exactly once
// per qualifying event and immutable afterward except the read flag.
type Notification struct {
	ID          id.NotificationID
	RecipientID id.UserID
	Type        Type
	Title       string
	Message     string
	Target      *TargetRef
	Read        bool
	CreatedAt   time.Time
}
