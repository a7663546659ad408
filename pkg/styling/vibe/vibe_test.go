package vibe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []Vibe
	}{
		{
			name: "drops sentinel unknowns and duplicates",
			raw:  []string{"default", "Office ", "office", "weird"},
			want: []Vibe{Office},
		},
		{
			name: "orders by priority regardless of input order",
			raw:  []string{"casual", "street", "office"},
			want: []Vibe{Office, Street, Casual},
		},
		{
			name: "empty input",
			raw:  []string{},
			want: []Vibe{},
		},
		{
			name: "only unknowns",
			raw:  []string{"default", "grunge", ""},
			want: []Vibe{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := []string{"Sporty", "minimal", "minimal", "default", "feminine"}
	once := Normalize(raw)

	asStrings := make([]string, len(once))
	for i, v := range once {
		asStrings[i] = string(v)
	}
	assert.Equal(t, once, Normalize(asStrings))
	assert.Equal(t, once, NormalizeVibes(once))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		vibes    []Vibe
		maxShown int
		want     string
	}{
		{
			name:     "overflow collapses into suffix",
			vibes:    []Vibe{Office, Minimal, Casual},
			maxShown: 2,
			want:     "Office • Minimal +1",
		},
		{
			name:     "no suffix when everything fits",
			vibes:    []Vibe{Office, Minimal},
			maxShown: 2,
			want:     "Office • Minimal",
		},
		{
			name:     "single vibe",
			vibes:    []Vibe{Street},
			maxShown: 2,
			want:     "Street",
		},
		{
			name:     "empty renders empty",
			vibes:    []Vibe{},
			maxShown: 2,
			want:     "",
		},
		{
			name:     "input order does not leak into the line",
			vibes:    []Vibe{Casual, Office, Sporty},
			maxShown: 2,
			want:     "Office • Sporty +1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.vibes, tt.maxShown))
		})
	}
}

func TestOverlap(t *testing.T) {
	a := []Vibe{Office, Minimal, Casual}

	assert.Equal(t, 2, Overlap(a, []Vibe{Minimal, Casual, Street}))
	assert.Equal(t, 0, Overlap(a, []Vibe{Street}))
	assert.Equal(t, 0, Overlap(a, nil))
	assert.Equal(t, 1, Overlap([]Vibe{Office, Office}, []Vibe{Office}), "duplicates count once")
}

func TestParse(t *testing.T) {
	v, ok := Parse("  OFFICE ")
	assert.True(t, ok)
	assert.Equal(t, Office, v)

	_, ok = Parse("default")
	assert.False(t, ok, "the legacy sentinel is not a vibe")

	_, ok = Parse("grunge")
	assert.False(t, ok)
}

func TestPriorityIndex(t *testing.T) {
	assert.Equal(t, 0, PriorityIndex(Office))
	assert.Equal(t, len(Priority)-1, PriorityIndex(Casual))
	assert.Equal(t, len(Priority), PriorityIndex(Vibe("grunge")), "unknowns sort last")
}
