package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Slug             string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Tagline          string    `gorm:"type:text"`
	Price            float64   `gorm:"type:numeric(10,2);default:0"`
	BillingPeriod    string    `gorm:"type:varchar(20);not null;default:'monthly'"`
	ScanLimit        int       `gorm:"default:0"`
	WardrobeAddLimit int       `gorm:"default:0"`
	Unlimited        bool      `gorm:"default:false"`
	IsMostPopular    bool      `gorm:"default:false"`
	IsActive         bool      `gorm:"default:true"`
	SortOrder        int       `gorm:"default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type UserSubscription struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId             uuid.UUID `gorm:"type:uuid;not null;index"`
	Status             string    `gorm:"type:varchar(50);not null"`
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time `gorm:"index"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}
