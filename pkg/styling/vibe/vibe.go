// Package vibe is the closed style-vibe vocabulary every raw tag string is
// funneled through. Nothing outside this package compares vibe strings
// directly; parse at the boundary, work with the typed values after.
package vibe

import (
	"fmt"
	"strings"
)

type Vibe string

const (
	Office   Vibe = "office"
	Minimal  Vibe = "minimal"
	Street   Vibe = "street"
	Feminine Vibe = "feminine"
	Sporty   Vibe = "sporty"
	Casual   Vibe = "casual"
)

// Priority is the display and tie-break order of the vocabulary. Normalize
// emits vibes in this order, so every formatted vibe line is deterministic.
var Priority = []Vibe{Office, Minimal, Street, Feminine, Sporty, Casual}

var priorityIndex = func() map[Vibe]int {
	m := make(map[Vibe]int, len(Priority))
	for i, v := range Priority {
		m[v] = i
	}
	return m
}()

// noneTag is the legacy sentinel some stored profiles still carry. It is not
// a vibe; Normalize drops it like any unknown tag.
const noneTag = "default"

// Parse maps a raw tag to its vibe, reporting whether the tag is in the
// vocabulary. Matching is case-insensitive and whitespace-tolerant.
func Parse(raw string) (Vibe, bool) {
	v := Vibe(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := priorityIndex[v]
	return v, ok
}

// PriorityIndex returns the vibe's position in Priority, or len(Priority)
// for values outside the vocabulary so unknowns always sort last.
func PriorityIndex(v Vibe) int {
	if i, ok := priorityIndex[v]; ok {
		return i
	}
	return len(Priority)
}

// Label returns the display form, capitalized.
func (v Vibe) Label() string {
	if len(v) == 0 {
		return ""
	}
	return strings.ToUpper(string(v[:1])) + string(v[1:])
}

// Normalize funnels raw tags into the vocabulary: trim, lowercase, drop
// unknowns and the legacy sentinel, dedupe, and order by Priority. The result
// is safe to compare and format directly. Idempotent.
func Normalize(raw []string) []Vibe {
	seen := make(map[Vibe]bool, len(raw))
	for _, tag := range raw {
		if strings.ToLower(strings.TrimSpace(tag)) == noneTag {
			continue
		}
		if v, ok := Parse(tag); ok {
			seen[v] = true
		}
	}
	out := make([]Vibe, 0, len(seen))
	for _, v := range Priority {
		if seen[v] {
			out = append(out, v)
		}
	}
	return out
}

// NormalizeVibes re-normalizes already-typed vibes, for data read back from
// storage where old rows may predate the closed vocabulary.
func NormalizeVibes(vibes []Vibe) []Vibe {
	raw := make([]string, len(vibes))
	for i, v := range vibes {
		raw[i] = string(v)
	}
	return Normalize(raw)
}

// Format renders a vibe line such as "Office • Minimal +1". At most maxShown
// labels appear; the rest collapse into the +N suffix. Empty input renders
// as an empty string.
func Format(vibes []Vibe, maxShown int) string {
	normalized := NormalizeVibes(vibes)
	if len(normalized) == 0 {
		return ""
	}
	if maxShown <= 0 || maxShown > len(normalized) {
		maxShown = len(normalized)
	}
	labels := make([]string, maxShown)
	for i := 0; i < maxShown; i++ {
		labels[i] = normalized[i].Label()
	}
	line := strings.Join(labels, " • ")
	if rest := len(normalized) - maxShown; rest > 0 {
		line += fmt.Sprintf(" +%d", rest)
	}
	return line
}

// Overlap counts the vibes present in both sets, duplicates ignored.
func Overlap(a, b []Vibe) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inB := make(map[Vibe]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	seen := make(map[Vibe]bool, len(a))
	n := 0
	for _, v := range a {
		if inB[v] && !seen[v] {
			seen[v] = true
			n++
		}
	}
	return n
}
