// Package recipe filters a category pool down to the items a styling topic
// actually calls for. Recipes are static configuration; which constraint
// gives way first when nothing matches is itself configuration (RelaxOrder),
// never an artifact of map iteration.
package recipe

import (
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/topic"
	"ai-stylist-be/pkg/styling/vibe"
)

// Key identifies a constraint facet for relaxed/locked bookkeeping.
type Key string

const (
	KeyColorFamily Key = "color_family"
	KeyFormality   Key = "formality"
	KeyVibe        Key = "vibe"
)

// GridSize caps the primary suggestion set to what the grid displays.
const GridSize = 6

// defaultRelaxOrder applies when a recipe doesn't spell out its own.
var defaultRelaxOrder = []Key{KeyColorFamily, KeyFormality, KeyVibe}

// Constraint restricts candidates on one facet. With MatchScanned set, the
// allowed values come from the scanned item at resolve time instead of the
// static lists.
type Constraint struct {
	Key           Key
	ColorFamilies []entity.ColorFamily
	Formalities   []entity.Formality
	Vibes         []vibe.Vibe
	MatchScanned  bool
}

func (c Constraint) matches(item entity.LibraryItem, scanned *entity.ScannedItem) bool {
	switch c.Key {
	case KeyColorFamily:
		allowed := c.ColorFamilies
		if c.MatchScanned {
			if scanned == nil || scanned.ColorFamily == "" {
				return true // nothing to match against, constraint is moot
			}
			allowed = []entity.ColorFamily{scanned.ColorFamily}
		}
		for _, cf := range allowed {
			if item.Attributes.ColorFamily == cf {
				return true
			}
		}
		return false
	case KeyFormality:
		allowed := c.Formalities
		if c.MatchScanned {
			if scanned == nil || scanned.Formality == "" {
				return true
			}
			allowed = []entity.Formality{scanned.Formality}
		}
		for _, f := range allowed {
			if item.Attributes.Formality == f {
				return true
			}
		}
		return false
	case KeyVibe:
		want := c.Vibes
		if c.MatchScanned {
			want = scanned.Vibes()
			if len(want) == 0 {
				return true
			}
		}
		return vibe.Overlap(item.Attributes.Vibes, want) > 0
	}
	return true
}

// Recipe is the static filter definition for one (topic, category) pair.
type Recipe struct {
	Required   []Constraint
	Optional   []Constraint
	RelaxOrder []Key
}

func (r Recipe) relaxOrder() []Key {
	if len(r.RelaxOrder) > 0 {
		return r.RelaxOrder
	}
	return defaultRelaxOrder
}

type tableKey struct {
	Topic    topic.Topic
	Category entity.Category
}

// table holds the shipped recipes. Pairs without an entry fall back to the
// unconstrained category pool.
var table = map[tableKey]Recipe{
	{topic.AddALayer, entity.CategoryOuterwear}: {
		Required: []Constraint{
			{Key: KeyFormality, MatchScanned: true},
		},
		Optional: []Constraint{
			{Key: KeyColorFamily, ColorFamilies: []entity.ColorFamily{entity.ColorNeutral, entity.ColorDark}},
			{Key: KeyVibe, MatchScanned: true},
		},
		RelaxOrder: []Key{KeyFormality},
	},
	{topic.AnchorWithNeutrals, entity.CategoryShoes}: {
		Required: []Constraint{
			{Key: KeyColorFamily, ColorFamilies: []entity.ColorFamily{entity.ColorNeutral, entity.ColorDark}},
		},
		Optional: []Constraint{
			{Key: KeyVibe, MatchScanned: true},
		},
	},
	{topic.AnchorWithNeutrals, entity.CategoryBag}: {
		Required: []Constraint{
			{Key: KeyColorFamily, ColorFamilies: []entity.ColorFamily{entity.ColorNeutral}},
		},
		Optional: []Constraint{
			{Key: KeyFormality, MatchScanned: true},
		},
	},
	{topic.BalanceProportions, entity.CategoryBottom}: {
		Required: []Constraint{
			{Key: KeyFormality, MatchScanned: true},
		},
		Optional: []Constraint{
			{Key: KeyVibe, MatchScanned: true},
			{Key: KeyColorFamily, ColorFamilies: []entity.ColorFamily{entity.ColorNeutral, entity.ColorDark, entity.ColorCool}},
		},
		RelaxOrder: []Key{KeyFormality},
	},
	{topic.ElevateBasics, entity.CategoryAccessory}: {
		Required: []Constraint{
			{Key: KeyVibe, Vibes: []vibe.Vibe{vibe.Office, vibe.Minimal}},
		},
		Optional: []Constraint{
			{Key: KeyColorFamily, MatchScanned: true},
		},
	},
	{topic.ElevateBasics, entity.CategoryShoes}: {
		Required: []Constraint{
			{Key: KeyFormality, Formalities: []entity.Formality{entity.FormalitySmart, entity.FormalityFormal}},
		},
		Optional: []Constraint{
			{Key: KeyVibe, MatchScanned: true},
		},
	},
	{topic.MixTextures, entity.CategoryTop}: {
		Required: []Constraint{
			{Key: KeyVibe, MatchScanned: true},
		},
		Optional: []Constraint{
			{Key: KeyColorFamily, MatchScanned: true},
		},
		RelaxOrder: []Key{KeyVibe},
	},
	{topic.DefineTheWaist, entity.CategoryDress}: {
		Required: []Constraint{
			{Key: KeyVibe, Vibes: []vibe.Vibe{vibe.Feminine, vibe.Office}},
		},
		Optional: []Constraint{
			{Key: KeyColorFamily, MatchScanned: true},
			{Key: KeyFormality, Formalities: []entity.Formality{entity.FormalitySmart, entity.FormalityFormal}},
		},
	},
}

// Lookup returns the recipe for a (topic, category) pair.
func Lookup(t topic.Topic, cat entity.Category) (Recipe, bool) {
	r, ok := table[tableKey{t, cat}]
	return r, ok
}
