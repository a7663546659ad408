package ranking

import (
	"testing"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/vibe"

	"github.com/stretchr/testify/assert"
)

func item(id string, vibes ...vibe.Vibe) entity.LibraryItem {
	return entity.LibraryItem{
		Id:       id,
		Category: entity.CategoryTop,
		Attributes: entity.ItemAttributes{
			Vibes: vibes,
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

func TestRankScannedOverlapDominates(t *testing.T) {
	// b matches both user vibes but only one scanned vibe; a matches two
	// scanned vibes and no user vibe. Scanned overlap must win outright.
	a := item("a", vibe.Street, vibe.Sporty)
	b := item("b", vibe.Street, vibe.Office, vibe.Minimal)

	got := Rank(
		[]entity.LibraryItem{b, a},
		[]vibe.Vibe{vibe.Street, vibe.Sporty},
		[]vibe.Vibe{vibe.Office, vibe.Minimal},
	)

	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestRankUserVibesBreakPrimaryTies(t *testing.T) {
	a := item("a", vibe.Street)
	b := item("b", vibe.Street, vibe.Minimal)

	got := Rank(
		[]entity.LibraryItem{a, b},
		[]vibe.Vibe{vibe.Street},
		[]vibe.Vibe{vibe.Minimal},
	)

	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestRankPriorityIndexBreaksRemainingTies(t *testing.T) {
	// Same primary and secondary overlap; the item whose matching vibe sits
	// higher in the priority order leads.
	a := item("a", vibe.Casual)
	b := item("b", vibe.Office)

	got := Rank(
		[]entity.LibraryItem{a, b},
		[]vibe.Vibe{vibe.Office, vibe.Casual},
		nil,
	)

	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestRankStableOnFullTie(t *testing.T) {
	a := item("a", vibe.Street)
	b := item("b", vibe.Street)
	c := item("c", vibe.Street)

	got := Rank([]entity.LibraryItem{a, b, c}, []vibe.Vibe{vibe.Street}, nil)

	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestRankEmptySignalsPreserveOrder(t *testing.T) {
	in := []entity.LibraryItem{item("x", vibe.Office), item("y"), item("z", vibe.Casual)}

	got := Rank(in, nil, nil)

	assert.Equal(t, []string{"x", "y", "z"}, ids(got))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []entity.LibraryItem{item("a"), item("b", vibe.Street)}

	_ = Rank(in, []vibe.Vibe{vibe.Street}, nil)

	assert.Equal(t, []string{"a", "b"}, ids(in))
}

func TestRankDeterministic(t *testing.T) {
	in := []entity.LibraryItem{
		item("a", vibe.Office),
		item("b", vibe.Street, vibe.Minimal),
		item("c", vibe.Casual),
		item("d", vibe.Street),
	}
	scanned := []vibe.Vibe{vibe.Street}
	user := []vibe.Vibe{vibe.Minimal, vibe.Casual}

	first := ids(Rank(in, scanned, user))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ids(Rank(in, scanned, user)))
	}
}
