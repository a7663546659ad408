// FILE: internal/entity/credit_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActionKind string
type ConsumeReason string

const (
	ActionScan        ActionKind = "scan"
	ActionWardrobeAdd ActionKind = "wardrobe_add"

	ReasonOK            ConsumeReason = "ok"
	ReasonQuotaExceeded ConsumeReason = "quota_exceeded"
	ReasonNetworkError  ConsumeReason = "network_error"
	ReasonOtherError    ConsumeReason = "other_error"
)

// ParseActionKind validates a raw action kind string.
func ParseActionKind(raw string) (ActionKind, bool) {
	switch ActionKind(raw) {
	case ActionScan, ActionWardrobeAdd:
		return ActionKind(raw), true
	}
	return "", false
}

// CreditTransaction is one ledger row per client-generated analysis key.
// The (user, kind, key) triple is unique; replays of a key read this row
// back instead of touching the counters again. Denied attempts are recorded
// too, so a replayed denial stays a denial.
type CreditTransaction struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ActionKind  ActionKind
	AnalysisKey string
	Allowed     bool
	Reason      ConsumeReason
	CreatedAt   time.Time
}
