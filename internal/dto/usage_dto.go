package dto

import "github.com/google/uuid"

// UsageStatusResponse mirrors what the client's account sheet renders:
// counters against the governing plan's caps.
type UsageStatusResponse struct {
	UserId           uuid.UUID `json:"user_id"`
	PlanName         string    `json:"plan_name"`
	PlanSlug         string    `json:"plan_slug"`
	Unlimited        bool      `json:"unlimited"`
	ScansUsed        int       `json:"scans_used"`
	ScansLimit       int       `json:"scans_limit"` // -1 = unlimited
	ScansRemaining   int       `json:"scans_remaining"`
	AddsUsed         int       `json:"adds_used"`
	AddsLimit        int       `json:"adds_limit"` // -1 = unlimited
	AddsRemaining    int       `json:"adds_remaining"`
}
