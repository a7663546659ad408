// Package board resolves the educational do/dont/try boards shown when a
// topic teaches rather than sells.
package board

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"ai-stylist-be/pkg/styling/topic"
)

type Kind string

const (
	KindDo   Kind = "do"
	KindDont Kind = "dont"
	KindTry  Kind = "try"
)

// labelPrefix is how the content pipeline tags raw board captions.
const labelPrefix = "tip:"

// kindRank: "do" leads the sheet, "try" boards close it.
var kindRank = map[Kind]int{KindDo: 0, KindDont: 1, KindTry: 2}

type Board struct {
	Kind     Kind   `json:"kind"`
	ImageURL string `json:"image_url"`
	Label    string `json:"label"`
}

// table holds the shipped boards per topic, in authoring order. Normalize
// fixes the display order; authoring order only breaks ties within a kind.
var table = map[topic.Topic][]Board{
	topic.AddALayer: {
		{Kind: KindTry, ImageURL: "boards/add-a-layer-try.jpg", Label: "tip:swap the hoodie for a knit"},
		{Kind: KindDo, ImageURL: "boards/add-a-layer-do.jpg", Label: "tip:keep the longest layer outermost"},
		{Kind: KindDont, ImageURL: "boards/add-a-layer-dont.jpg", Label: "tip:stack two bulky layers"},
	},
	topic.AnchorWithNeutrals: {
		{Kind: KindDo, ImageURL: "boards/anchor-neutrals-do.jpg", Label: "tip:ground bright pieces with neutral shoes"},
		{Kind: KindDont, ImageURL: "boards/anchor-neutrals-dont.jpg", Label: "tip:add a third statement color"},
		{Kind: KindTry, ImageURL: "boards/anchor-neutrals-try.jpg", Label: "tip:echo one accent color in the bag"},
	},
	topic.BalanceProportions: {
		{Kind: KindDont, ImageURL: "boards/balance-dont.jpg", Label: "tip:pair oversized with oversized"},
		{Kind: KindDo, ImageURL: "boards/balance-do.jpg", Label: "tip:fit one half, relax the other"},
		{Kind: KindTry, ImageURL: "boards/balance-try.jpg", Label: "tip:half-tuck the loose top"},
	},
	topic.ElevateBasics: {
		{Kind: KindDo, ImageURL: "boards/elevate-do.jpg", Label: "tip:add one structured piece"},
		{Kind: KindTry, ImageURL: "boards/elevate-try.jpg", Label: "tip:trade sneakers for loafers"},
	},
	topic.MixTextures: {
		{Kind: KindDo, ImageURL: "boards/textures-do.jpg", Label: "tip:contrast matte with shine"},
		{Kind: KindDont, ImageURL: "boards/textures-dont.jpg", Label: "tip:repeat the same knit weight"},
		{Kind: KindTry, ImageURL: "boards/textures-try.jpg", Label: "tip:leather against soft wool"},
	},
	topic.DefineTheWaist: {
		{Kind: KindTry, ImageURL: "boards/waist-try.jpg", Label: "tip:belt the outer layer"},
		{Kind: KindDo, ImageURL: "boards/waist-do.jpg", Label: "tip:mark the narrowest point"},
	},
}

// Resolve returns the normalized boards for a topic.
func Resolve(t topic.Topic) ([]Board, bool) {
	raw, ok := table[t]
	if !ok {
		return nil, false
	}
	return Normalize(raw), true
}

// Normalize orders boards do → dont → try (stable within a kind) and cleans
// labels: the content prefix is stripped and the first letter capitalized.
func Normalize(boards []Board) []Board {
	out := make([]Board, len(boards))
	copy(out, boards)
	sort.SliceStable(out, func(a, b int) bool {
		return kindRank[out[a].Kind] < kindRank[out[b].Kind]
	})
	for i := range out {
		out[i].Label = cleanLabel(out[i].Label)
	}
	return out
}

func cleanLabel(label string) string {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(label), labelPrefix))
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
