package dto

import "github.com/google/uuid"

type PlanLimitsDTO struct {
	Scans        int  `json:"scans"`         // -1 = unlimited
	WardrobeAdds int  `json:"wardrobe_adds"` // -1 = unlimited
	Unlimited    bool `json:"unlimited"`
}

type PlanResponse struct {
	Id            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Tagline       string        `json:"tagline"`
	Price         float64       `json:"price"`
	BillingPeriod string        `json:"billing_period"`
	IsMostPopular bool          `json:"is_most_popular"`
	Limits        PlanLimitsDTO `json:"limits"`
}
