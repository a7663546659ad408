// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type BillingPeriod string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"

	// LimitUnlimited marks a quota with no cap.
	LimitUnlimited = -1
)

type SubscriptionPlan struct {
	Id            uuid.UUID
	Name          string
	Slug          string
	Tagline       string
	Price         float64
	BillingPeriod BillingPeriod
	// Quota caps; LimitUnlimited means no cap.
	ScanLimit        int
	WardrobeAddLimit int
	// Pro plans skip quota math entirely.
	Unlimited     bool
	IsMostPopular bool
	IsActive      bool
	SortOrder     int
}

// FreePlan is the fallback applied when a user has no active subscription.
// Seeded into the database as well; this copy keeps the ledger total when
// the plans table is unreachable or unseeded.
func FreePlan() *SubscriptionPlan {
	return &SubscriptionPlan{
		Name:             "Free",
		Slug:             "free",
		ScanLimit:        3,
		WardrobeAddLimit: 10,
		BillingPeriod:    BillingPeriodMonthly,
		IsActive:         true,
	}
}

type UserSubscription struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	PlanId             uuid.UUID
	Status             SubscriptionStatus
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CreatedAt          time.Time
}
