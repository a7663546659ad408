// FILE: internal/entity/library_entity.go
package entity

import (
	"strings"

	"ai-stylist-be/pkg/styling/vibe"
)

type Category string
type ColorFamily string
type Formality string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryDress     Category = "dress"
	CategoryShoes     Category = "shoes"
	CategoryBag       Category = "bag"
	CategoryAccessory Category = "accessory"

	ColorNeutral ColorFamily = "neutral"
	ColorWarm    ColorFamily = "warm"
	ColorCool    ColorFamily = "cool"
	ColorBright  ColorFamily = "bright"
	ColorPastel  ColorFamily = "pastel"
	ColorDark    ColorFamily = "dark"

	FormalityRelaxed Formality = "relaxed"
	FormalitySmart   Formality = "smart"
	FormalityFormal  Formality = "formal"
)

var categoryLabels = map[Category]string{
	CategoryTop:       "Tops",
	CategoryBottom:    "Bottoms",
	CategoryOuterwear: "Outerwear",
	CategoryDress:     "Dresses",
	CategoryShoes:     "Shoes",
	CategoryBag:       "Bags",
	CategoryAccessory: "Accessories",
}

// ParseCategory is the validation boundary for raw category strings.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := categoryLabels[c]
	return c, ok
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ItemAttributes are the filterable facets of a catalog or wardrobe item.
type ItemAttributes struct {
	Vibes       []vibe.Vibe `json:"vibes"`
	ColorFamily ColorFamily `json:"color_family"`
	Formality   Formality   `json:"formality"`
}

// LibraryItem is one entry of the shared content library. Immutable once
// fetched; the whole set is replaced on refresh.
type LibraryItem struct {
	Id         string
	Label      string
	Category   Category
	Attributes ItemAttributes
	ImageURL   string
}

// ScannedItem is the opaque output of the external image analysis call.
type ScannedItem struct {
	Category    Category
	StyleTags   []string
	ColorFamily ColorFamily
	Formality   Formality
}

// Vibes returns the scanned item's style tags normalized to the closed
// vocabulary.
func (s *ScannedItem) Vibes() []vibe.Vibe {
	if s == nil {
		return []vibe.Vibe{}
	}
	return vibe.Normalize(s.StyleTags)
}
