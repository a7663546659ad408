// Package content assembles what a tip sheet shows: either a shoppable
// suggestions grid or an educational board set. The decision is made once at
// construction and carried as an explicit kind, never re-derived from which
// fields happen to be populated.
package content

import (
	"fmt"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/board"
	"ai-stylist-be/pkg/styling/recipe"
	"ai-stylist-be/pkg/styling/topic"
	"ai-stylist-be/pkg/styling/vibe"
)

type Mode string
type Kind string

const (
	ModeSuggestions Mode = "suggestions"
	ModeEducational Mode = "educational"

	KindSuggestions Kind = "suggestions"
	KindEducational Kind = "educational"
)

// Unresolved reasons. These are expected input conditions, not failures: the
// caller dismisses the sheet rather than surfacing an error.
const (
	ReasonUnknownTopic    = "unknown_topic"
	ReasonMissingCategory = "missing_category"
	ReasonUnknownMode     = "unknown_mode"
)

// UnresolvedError signals "nothing to show". It is returned as a value and
// carries a coded reason for telemetry; it never wraps a lower error.
type UnresolvedError struct {
	Reason string
}

func (e *UnresolvedError) Error() string {
	return "content unresolved: " + e.Reason
}

// SuggestionsMeta records how the recipe behaved so the UI can explain a
// broadened result.
type SuggestionsMeta struct {
	RelaxedKeys []recipe.Key `json:"relaxed_keys"`
	LockedKeys  []recipe.Key `json:"locked_keys"`
	WasRelaxed  bool         `json:"was_relaxed"`
}

type Suggestions struct {
	Items       []entity.LibraryItem
	MoreItems   []entity.LibraryItem
	CanShowMore bool
	Meta        SuggestionsMeta
	Heading     string
	ShowAddCTA  bool
}

type Educational struct {
	Boards []board.Board
}

// ResolvedContent is a tagged union: exactly one of Suggestions/Educational
// is set, matching Kind.
type ResolvedContent struct {
	Kind        Kind
	Suggestions *Suggestions
	Educational *Educational
}

// Request is everything a resolution needs, already fetched and parsed.
// Resolution itself performs no I/O.
type Request struct {
	Mode           Mode
	Topic          topic.Topic
	Scanned        *entity.ScannedItem
	UserVibes      []vibe.Vibe
	TargetCategory entity.Category
	// Pool is the library's current item set for TargetCategory, in stable
	// library order.
	Pool          []entity.LibraryItem
	WardrobeCount int
}

// headingFor switches the grid copy on wardrobe emptiness: a first-run user
// sees examples to add plus the CTA, everyone else sees suggestions.
func headingFor(cat entity.Category, count, wardrobeCount int) (string, bool) {
	if wardrobeCount == 0 {
		return fmt.Sprintf("Examples to add (%d)", count), true
	}
	return fmt.Sprintf("Suggested %s (%d)", cat.Label(), count), false
}
