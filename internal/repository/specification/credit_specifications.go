package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByAnalysisKey pins the one ledger row a client idempotency key may own.
type ByAnalysisKey struct {
	UserID      uuid.UUID
	ActionKind  string
	AnalysisKey string
}

func (s ByAnalysisKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ? AND action_kind = ? AND analysis_key = ?",
		s.UserID, s.ActionKind, s.AnalysisKey)
}

// ActiveAt filters subscriptions still inside their billing period.
type ActiveAt struct {
	Field string
}

func (s ActiveAt) Apply(db *gorm.DB) *gorm.DB {
	field := s.Field
	if field == "" {
		field = "current_period_end"
	}
	return db.Where(field+" > NOW()")
}
