package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The composite unique index on (user_id, analysis_key) makes a replayed add
// a constraint violation rather than a duplicate row.
type WardrobeItem struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_wardrobe_items_key,priority:1"`
	AnalysisKey string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_wardrobe_items_key,priority:2"`
	Label       string         `gorm:"type:varchar(255);not null"`
	Category    string         `gorm:"type:varchar(50);not null;index"`
	Attributes  datatypes.JSON `gorm:"type:jsonb"`
	ImageURL    string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (WardrobeItem) TableName() string {
	return "wardrobe_items"
}
