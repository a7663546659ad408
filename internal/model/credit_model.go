package model

import (
	"time"

	"github.com/google/uuid"
)

// CreditTransaction rows are the idempotency record for quota consumption.
// The composite unique index makes a double-insert for the same client key
// a constraint violation rather than a double spend.
type CreditTransaction struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_credit_tx_key,priority:1"`
	ActionKind  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_credit_tx_key,priority:2"`
	AnalysisKey string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_credit_tx_key,priority:3"`
	Allowed     bool      `gorm:"not null"`
	Reason      string    `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
