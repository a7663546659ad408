package catalog

import (
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/vibe"
)

// fallbackItems is the dataset bundled with the build. Served when the
// remote catalog has never loaded or the fetch failed, so the suggestion
// grid is never fully blocked on the network.
var fallbackItems = []entity.LibraryItem{
	{Id: "fb-top-001", Label: "White poplin shirt", Category: entity.CategoryTop,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Office, vibe.Minimal}, ColorFamily: entity.ColorNeutral, Formality: entity.FormalitySmart},
		ImageURL:   "fallback/top-001.jpg"},
	{Id: "fb-top-002", Label: "Boxy graphic tee", Category: entity.CategoryTop,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Street, vibe.Casual}, ColorFamily: entity.ColorBright, Formality: entity.FormalityRelaxed},
		ImageURL:   "fallback/top-002.jpg"},
	{Id: "fb-top-003", Label: "Ribbed knit top", Category: entity.CategoryTop,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Feminine, vibe.Minimal}, ColorFamily: entity.ColorPastel, Formality: entity.FormalitySmart},
		ImageURL:   "fallback/top-003.jpg"},
	{Id: "fb-bottom-001", Label: "Tailored wool trousers", Category: entity.CategoryBottom,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Office, vibe.Minimal}, ColorFamily: entity.ColorDark, Formality: entity.FormalityFormal},
		ImageURL:   "fallback/bottom-001.jpg"},
	{Id: "fb-bottom-002", Label: "Wide-leg jeans", Category: entity.CategoryBottom,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Street, vibe.Casual}, ColorFamily: entity.ColorCool, Formality: entity.FormalityRelaxed},
		ImageURL:   "fallback/bottom-002.jpg"},
	{Id: "fb-bottom-003", Label: "Track pants", Category: entity.CategoryBottom,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Sporty, vibe.Casual}, ColorFamily: entity.ColorDark, Formality: entity.FormalityRelaxed},
		ImageURL:   "fallback/bottom-003.jpg"},
	{Id: "fb-outer-001", Label: "Single-breasted blazer", Category: entity.CategoryOuterwear,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Office, vibe.Minimal}, ColorFamily: entity.ColorNeutral, Formality: entity.FormalitySmart},
		ImageURL:   "fallback/outer-001.jpg"},
	{Id: "fb-outer-002", Label: "Oversized bomber", Category: entity.CategoryOuterwear,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Street, vibe.Sporty}, ColorFamily: entity.ColorDark, Formality: entity.FormalityRelaxed},
		ImageURL:   "fallback/outer-002.jpg"},
	{Id: "fb-outer-003", Label: "Cropped cardigan", Category: entity.CategoryOuterwear,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Feminine, vibe.Casual}, ColorFamily: entity.ColorPastel, Formality: entity.FormalityRelaxed},
		ImageURL:   "fallback/outer-003.jpg"},
	{Id: "fb-dress-001", Label: "Slip midi dress", Category: entity.CategoryDress,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Feminine, vibe.Minimal}, ColorFamily: entity.ColorDark, Formality: entity.FormalitySmart},
		ImageURL:   "fallback/dress-001.jpg"},
	{Id: "fb-shoes-001", Label: "Leather loafers", Category: entity.CategoryShoes,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Office, vibe.Minimal}, ColorFamily: entity.ColorNeutral, Formality: entity.FormalitySmart},
		ImageURL:   "fallback/shoes-001.jpg"},
	{Id: "fb-shoes-002", Label: "Retro runners", Category: entity.CategoryShoes,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Sporty, vibe.Street}, ColorFamily: entity.ColorBright, Formality: entity.FormalityRelaxed},
		ImageURL:   "fallback/shoes-002.jpg"},
	{Id: "fb-bag-001", Label: "Structured tote", Category: entity.CategoryBag,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Office, vibe.Minimal}, ColorFamily: entity.ColorNeutral, Formality: entity.FormalitySmart},
		ImageURL:   "fallback/bag-001.jpg"},
	{Id: "fb-acc-001", Label: "Slim leather belt", Category: entity.CategoryAccessory,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Office, vibe.Minimal}, ColorFamily: entity.ColorDark, Formality: entity.FormalitySmart},
		ImageURL:   "fallback/acc-001.jpg"},
	{Id: "fb-acc-002", Label: "Chunky chain necklace", Category: entity.CategoryAccessory,
		Attributes: entity.ItemAttributes{Vibes: []vibe.Vibe{vibe.Street, vibe.Feminine}, ColorFamily: entity.ColorBright, Formality: entity.FormalityRelaxed},
		ImageURL:   "fallback/acc-002.jpg"},
}

// FallbackItems returns a copy of the bundled dataset in library order.
func FallbackItems() []entity.LibraryItem {
	out := make([]entity.LibraryItem, len(fallbackItems))
	copy(out, fallbackItems)
	return out
}
