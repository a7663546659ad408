package dto

import (
	"ai-stylist-be/pkg/catalog"
	"ai-stylist-be/pkg/styling/board"
)

// ResolveContentRequest is the tip-sheet open call. Raw strings are parsed
// at the service boundary; unknown keys resolve to "nothing to show".
type ResolveContentRequest struct {
	Mode           string       `json:"mode" validate:"required,oneof=suggestions educational"`
	Topic          string       `json:"topic" validate:"required"`
	TargetCategory string       `json:"target_category"`
	Scanned        *ScannedItem `json:"scanned_item"`
}

// ScannedItem is the client-side echo of the analyzer output.
type ScannedItem struct {
	Category    string   `json:"category"`
	StyleTags   []string `json:"style_tags"`
	ColorFamily string   `json:"color_family"`
	Formality   string   `json:"formality"`
}

type SuggestionItem struct {
	Id       string   `json:"id"`
	Label    string   `json:"label"`
	Category string   `json:"category"`
	Vibes    []string `json:"vibes"`
	VibeLine string   `json:"vibe_line"` // formatted "Office • Minimal +1"
	ImageURL string   `json:"image_url"`
}

type SuggestionsMeta struct {
	RelaxedKeys []string `json:"relaxed_keys"`
	LockedKeys  []string `json:"locked_keys"`
	WasRelaxed  bool     `json:"was_relaxed"`
}

type ResolveContentResponse struct {
	Kind        string           `json:"kind"` // suggestions | educational
	Heading     string           `json:"heading,omitempty"`
	ShowAddCTA  bool             `json:"show_add_cta,omitempty"`
	Items       []SuggestionItem `json:"items,omitempty"`
	MoreItems   []SuggestionItem `json:"more_items,omitempty"`
	CanShowMore bool             `json:"can_show_more,omitempty"`
	Meta        *SuggestionsMeta `json:"meta,omitempty"`
	Boards      []board.Board    `json:"boards,omitempty"`
}

// UnresolvedResponse is the "nothing to show" payload for 422 responses.
type UnresolvedResponse struct {
	Reason string `json:"reason"`
}

type LibraryStateResponse struct {
	State catalog.Snapshot `json:"state"`
}

type LibraryCategoryResponse struct {
	Category string           `json:"category"`
	Items    []SuggestionItem `json:"items"`
	State    catalog.Snapshot `json:"state"`
}
