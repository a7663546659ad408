// Package ranking orders filtered catalog items by how well they match the
// two vibe signals. The signals stay separate end to end: the scanned item's
// vibes are the primary axis, the user's preference vibes the secondary.
package ranking

import (
	"sort"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/vibe"
)

type scored struct {
	item      entity.LibraryItem
	primary   int // overlap with scanned-item vibes
	secondary int // overlap with user preference vibes
	bestIdx   int // priority index of the item's best matching vibe
	origin    int // stable original library position
}

// Rank sorts items by scanned-vibe overlap, then user-vibe overlap, then the
// priority index of the item's highest-priority matching vibe, then original
// library order. With both signals empty the input order is preserved.
func Rank(items []entity.LibraryItem, scannedVibes, userVibes []vibe.Vibe) []entity.LibraryItem {
	if len(items) == 0 {
		return []entity.LibraryItem{}
	}
	if len(scannedVibes) == 0 && len(userVibes) == 0 {
		out := make([]entity.LibraryItem, len(items))
		copy(out, items)
		return out
	}

	matchable := make(map[vibe.Vibe]bool, len(scannedVibes)+len(userVibes))
	for _, v := range scannedVibes {
		matchable[v] = true
	}
	for _, v := range userVibes {
		matchable[v] = true
	}

	rows := make([]scored, len(items))
	for i, it := range items {
		best := len(vibe.Priority)
		for _, v := range it.Attributes.Vibes {
			if matchable[v] {
				if idx := vibe.PriorityIndex(v); idx < best {
					best = idx
				}
			}
		}
		rows[i] = scored{
			item:      it,
			primary:   vibe.Overlap(it.Attributes.Vibes, scannedVibes),
			secondary: vibe.Overlap(it.Attributes.Vibes, userVibes),
			bestIdx:   best,
			origin:    i,
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		ra, rb := rows[a], rows[b]
		if ra.primary != rb.primary {
			return ra.primary > rb.primary
		}
		if ra.secondary != rb.secondary {
			return ra.secondary > rb.secondary
		}
		if ra.bestIdx != rb.bestIdx {
			return ra.bestIdx < rb.bestIdx
		}
		return ra.origin < rb.origin
	})

	out := make([]entity.LibraryItem, len(rows))
	for i, r := range rows {
		out[i] = r.item
	}
	return out
}
