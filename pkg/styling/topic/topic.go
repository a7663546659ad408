// Package topic enumerates the styling subjects ("bullet keys") the client
// can open a tip sheet for.
package topic

import "strings"

type Topic string

const (
	AddALayer          Topic = "add_a_layer"
	AnchorWithNeutrals Topic = "anchor_with_neutrals"
	BalanceProportions Topic = "balance_proportions"
	ElevateBasics      Topic = "elevate_basics"
	MixTextures        Topic = "mix_textures"
	DefineTheWaist     Topic = "define_the_waist"
)

var all = map[Topic]bool{
	AddALayer:          true,
	AnchorWithNeutrals: true,
	BalanceProportions: true,
	ElevateBasics:      true,
	MixTextures:        true,
	DefineTheWaist:     true,
}

// Parse is the validation boundary for raw topic keys.
func Parse(raw string) (Topic, bool) {
	t := Topic(strings.ToLower(strings.TrimSpace(raw)))
	return t, all[t]
}

func (t Topic) Valid() bool {
	return all[t]
}
