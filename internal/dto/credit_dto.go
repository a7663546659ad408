package dto

import (
	"ai-stylist-be/internal/entity"
)

// ConsumeResult is the full outcome of a credit consumption attempt. Replays
// of an analysis key return the stored Allowed and Reason unchanged; Replayed
// marks second-and-later deliveries so callers can skip side effects that
// already ran the first time.
type ConsumeResult struct {
	Allowed  bool                 `json:"allowed"`
	Reason   entity.ConsumeReason `json:"reason"`
	Replayed bool                 `json:"-"`
}

// QuotaExceededError carries the paywall payload. It is an expected
// user-facing condition, not a bug: controllers map it to the pricing modal,
// never to an error dialog.
type QuotaExceededError struct {
	Kind  entity.ActionKind `json:"action_kind"`
	Limit int               `json:"limit"`
	Used  int               `json:"used"`
}

func (e *QuotaExceededError) Error() string {
	return "quota exceeded for " + string(e.Kind)
}

// QuotaExceededData is the data payload for 429 responses
type QuotaExceededData struct {
	ActionKind       entity.ActionKind `json:"action_kind"`
	Limit            int               `json:"limit"`
	Used             int               `json:"used"`
	ShowModalPricing bool              `json:"show_modal_pricing"`
}
