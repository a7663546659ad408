package recipe

import (
	"fmt"
	"testing"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/topic"
	"ai-stylist-be/pkg/styling/vibe"

	"github.com/stretchr/testify/assert"
)

func shoe(id string, cf entity.ColorFamily, vibes ...vibe.Vibe) entity.LibraryItem {
	return entity.LibraryItem{
		Id:       id,
		Category: entity.CategoryShoes,
		Attributes: entity.ItemAttributes{
			Vibes:       vibes,
			ColorFamily: cf,
			Formality:   entity.FormalitySmart,
		},
	}
}

func ids(items []entity.LibraryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Id
	}
	return out
}

func TestResolveFiltersAndOffersRestOfPool(t *testing.T) {
	// anchor_with_neutrals/shoes requires a neutral or dark color family.
	// Two of six shoes qualify; the rest stay reachable through MoreItems.
	pool := []entity.LibraryItem{
		shoe("s1", entity.ColorBright),
		shoe("s2", entity.ColorNeutral),
		shoe("s3", entity.ColorWarm),
		shoe("s4", entity.ColorDark),
		shoe("s5", entity.ColorPastel),
		shoe("s6", entity.ColorCool),
	}

	res := Resolve(topic.AnchorWithNeutrals, entity.CategoryShoes, nil, pool)

	assert.Equal(t, []string{"s2", "s4"}, ids(res.Items))
	assert.Len(t, res.MoreItems, 6)
	assert.Equal(t, []string{"s2", "s4"}, ids(res.MoreItems[:2]), "shown items lead the wider set")
	assert.True(t, res.CanShowMore)
	assert.False(t, res.WasRelaxed)
}

func TestResolveOptionalLocksWhenItHolds(t *testing.T) {
	scanned := &entity.ScannedItem{
		Category:  entity.CategoryTop,
		StyleTags: []string{"street"},
	}
	pool := []entity.LibraryItem{
		shoe("s1", entity.ColorNeutral, vibe.Street),
		shoe("s2", entity.ColorNeutral, vibe.Office),
	}

	res := Resolve(topic.AnchorWithNeutrals, entity.CategoryShoes, scanned, pool)

	assert.Equal(t, []string{"s1"}, ids(res.Items))
	assert.Equal(t, []Key{KeyVibe}, res.LockedKeys)
	assert.Empty(t, res.RelaxedKeys)
}

func TestResolveOptionalRelaxesInsteadOfEmptying(t *testing.T) {
	scanned := &entity.ScannedItem{
		Category:  entity.CategoryTop,
		StyleTags: []string{"sporty"},
	}
	// Both shoes pass the required color check, neither matches the scanned
	// vibe. The optional gives way rather than emptying the grid.
	pool := []entity.LibraryItem{
		shoe("s1", entity.ColorNeutral, vibe.Office),
		shoe("s2", entity.ColorDark, vibe.Minimal),
	}

	res := Resolve(topic.AnchorWithNeutrals, entity.CategoryShoes, scanned, pool)

	assert.Equal(t, []string{"s1", "s2"}, ids(res.Items))
	assert.Equal(t, []Key{KeyVibe}, res.RelaxedKeys)
	assert.True(t, res.WasRelaxed)
}

func TestResolveRequiredRelaxation(t *testing.T) {
	// add_a_layer/outerwear requires matching the scanned formality and
	// relaxes it when nothing fits.
	scanned := &entity.ScannedItem{
		Category:  entity.CategoryTop,
		Formality: entity.FormalityFormal,
	}
	relaxedPool := []entity.LibraryItem{
		{
			Id:       "o1",
			Category: entity.CategoryOuterwear,
			Attributes: entity.ItemAttributes{
				ColorFamily: entity.ColorNeutral,
				Formality:   entity.FormalityRelaxed,
			},
		},
	}

	res := Resolve(topic.AddALayer, entity.CategoryOuterwear, scanned, relaxedPool)

	assert.Equal(t, []string{"o1"}, ids(res.Items))
	assert.Contains(t, res.RelaxedKeys, KeyFormality)
	assert.True(t, res.WasRelaxed)
}

func TestResolveEmptyCategory(t *testing.T) {
	res := Resolve(topic.AnchorWithNeutrals, entity.CategoryShoes, nil, nil)

	assert.Empty(t, res.Items)
	assert.Empty(t, res.MoreItems)
	assert.False(t, res.CanShowMore)
	assert.False(t, res.WasRelaxed)
}

func TestResolveNoRecipeCapsAtGridSize(t *testing.T) {
	pool := make([]entity.LibraryItem, 0, GridSize+2)
	for i := 0; i < GridSize+2; i++ {
		pool = append(pool, entity.LibraryItem{
			Id:       fmt.Sprintf("b%d", i),
			Category: entity.CategoryBag,
		})
	}

	// No recipe exists for this pairing; the whole pool is the candidate set.
	res := Resolve(topic.MixTextures, entity.CategoryBag, nil, pool)

	assert.Len(t, res.Items, GridSize)
	assert.Len(t, res.MoreItems, GridSize+2)
	assert.True(t, res.CanShowMore)
}

func TestResolveDeterministic(t *testing.T) {
	scanned := &entity.ScannedItem{
		Category:  entity.CategoryTop,
		StyleTags: []string{"street", "casual"},
	}
	pool := []entity.LibraryItem{
		shoe("s1", entity.ColorNeutral, vibe.Street),
		shoe("s2", entity.ColorBright, vibe.Casual),
		shoe("s3", entity.ColorDark, vibe.Office),
		shoe("s4", entity.ColorNeutral, vibe.Casual),
	}

	first := Resolve(topic.AnchorWithNeutrals, entity.CategoryShoes, scanned, pool)
	for i := 0; i < 10; i++ {
		again := Resolve(topic.AnchorWithNeutrals, entity.CategoryShoes, scanned, pool)
		assert.Equal(t, first, again)
	}
}

func TestResolveFullRelaxRecordsResidualKeys(t *testing.T) {
	rec := Recipe{
		Required: []Constraint{
			{Key: KeyColorFamily, ColorFamilies: []entity.ColorFamily{entity.ColorBright}},
			{Key: KeyVibe, Vibes: []vibe.Vibe{vibe.Street}},
		},
		RelaxOrder: []Key{KeyColorFamily},
	}
	pool := []entity.LibraryItem{
		shoe("s1", entity.ColorNeutral, vibe.Office),
		shoe("s2", entity.ColorDark, vibe.Minimal),
	}

	// Nothing matches even after the relax order runs dry; the fallback to
	// the whole pool reports every dropped required key, not just the
	// ordered ones.
	res := resolveRecipe(rec, nil, pool)

	assert.Len(t, res.Items, 2)
	assert.True(t, res.WasRelaxed)
	assert.ElementsMatch(t, []Key{KeyColorFamily, KeyVibe}, res.RelaxedKeys)
	assert.Empty(t, res.LockedKeys)
}
