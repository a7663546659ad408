package recipe

import (
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/topic"
)

// Result carries the filtered sets plus the bookkeeping the UI needs to
// explain itself: which optional facets held (locked) and which gave way
// (relaxed), and whether a broader "show more" pool exists.
type Result struct {
	Items       []entity.LibraryItem
	MoreItems   []entity.LibraryItem
	RelaxedKeys []Key
	LockedKeys  []Key
	WasRelaxed  bool
	CanShowMore bool
}

// Resolve filters the category pool through the (topic, category) recipe.
// Pure and deterministic: identical input yields identical sets and keys.
// The pool must already be restricted to the target category, in stable
// library order.
func Resolve(t topic.Topic, cat entity.Category, scanned *entity.ScannedItem, pool []entity.LibraryItem) Result {
	// Category empty is its own state, distinct from a recipe finding
	// nothing: there is no broader pool to offer.
	if len(pool) == 0 {
		return Result{
			Items:       []entity.LibraryItem{},
			MoreItems:   []entity.LibraryItem{},
			RelaxedKeys: []Key{},
			LockedKeys:  []Key{},
		}
	}

	rec, found := Lookup(t, cat)
	if !found {
		// No recipe: the whole category is the candidate set.
		return assemble(pool, pool, nil, nil)
	}

	return resolveRecipe(rec, scanned, pool)
}

func resolveRecipe(rec Recipe, scanned *entity.ScannedItem, pool []entity.LibraryItem) Result {
	relaxed := []Key{}
	locked := []Key{}

	// Required constraints first; relax in the configured order until at
	// least one item survives or nothing is left to drop.
	required := rec.Required
	candidates := applyAll(pool, required, scanned)
	if len(candidates) == 0 {
		for _, key := range rec.relaxOrder() {
			next, dropped := dropKey(required, key)
			if !dropped {
				continue
			}
			required = next
			relaxed = append(relaxed, key)
			candidates = applyAll(pool, required, scanned)
			if len(candidates) > 0 {
				break
			}
		}
		if len(candidates) == 0 {
			// Every required constraint relaxed away, including any whose
			// key the relax order never listed.
			for _, c := range required {
				relaxed = append(relaxed, c.Key)
			}
			candidates = pool
		}
	}

	// Optionals narrow the set only while something survives; an optional
	// that would empty the grid is dropped and reported as relaxed.
	for _, c := range rec.Optional {
		narrowed := applyAll(candidates, []Constraint{c}, scanned)
		if len(narrowed) > 0 {
			candidates = narrowed
			locked = append(locked, c.Key)
		} else {
			relaxed = append(relaxed, c.Key)
		}
	}

	return assemble(candidates, pool, relaxed, locked)
}

func assemble(candidates, pool []entity.LibraryItem, relaxed, locked []Key) Result {
	items := candidates
	if len(items) > GridSize {
		items = items[:GridSize]
	}

	// MoreItems is a superset: the shown items first, then the rest of the
	// category pool the filter excluded (or the cap cut off).
	shown := make(map[string]bool, len(items))
	more := make([]entity.LibraryItem, 0, len(pool))
	more = append(more, items...)
	for _, it := range items {
		shown[it.Id] = true
	}
	for _, it := range pool {
		if !shown[it.Id] {
			more = append(more, it)
		}
	}

	if relaxed == nil {
		relaxed = []Key{}
	}
	if locked == nil {
		locked = []Key{}
	}

	return Result{
		Items:       items,
		MoreItems:   more,
		RelaxedKeys: dedupeKeys(relaxed),
		LockedKeys:  dedupeKeys(locked),
		WasRelaxed:  len(relaxed) > 0,
		CanShowMore: len(more) > len(items),
	}
}

func applyAll(items []entity.LibraryItem, cs []Constraint, scanned *entity.ScannedItem) []entity.LibraryItem {
	out := make([]entity.LibraryItem, 0, len(items))
	for _, it := range items {
		ok := true
		for _, c := range cs {
			if !c.matches(it, scanned) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}

func dropKey(cs []Constraint, key Key) ([]Constraint, bool) {
	out := make([]Constraint, 0, len(cs))
	dropped := false
	for _, c := range cs {
		if c.Key == key {
			dropped = true
			continue
		}
		out = append(out, c)
	}
	return out, dropped
}

func dedupeKeys(keys []Key) []Key {
	seen := make(map[Key]bool, len(keys))
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
