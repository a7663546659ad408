package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName          string    `gorm:"type:varchar(255);not null"`
	Role              string    `gorm:"type:varchar(50);not null;default:'user'"`
	Status            string    `gorm:"type:varchar(50);not null;default:'pending'"`
	AvatarURL         *string   `gorm:"type:text"`
	StyleVibes        datatypes.JSON `gorm:"type:jsonb"`
	ScansUsed         int       `gorm:"default:0"`
	WardrobeAddsUsed  int       `gorm:"default:0"`
	ScanLimitOverride *int
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
