package mapper

import (
	"encoding/json"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/model"
	"ai-stylist-be/pkg/styling/vibe"

	"gorm.io/datatypes"
)

type WardrobeMapper struct{}

func NewWardrobeMapper() *WardrobeMapper {
	return &WardrobeMapper{}
}

func (m *WardrobeMapper) ToEntity(w *model.WardrobeItem) *entity.WardrobeItem {
	if w == nil {
		return nil
	}
	return &entity.WardrobeItem{
		Id:          w.Id,
		UserId:      w.UserId,
		AnalysisKey: w.AnalysisKey,
		Label:       w.Label,
		Category:    entity.Category(w.Category),
		Attributes:  attributesFromJSON(w.Attributes),
		ImageURL:    w.ImageURL,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WardrobeMapper) ToModel(w *entity.WardrobeItem) *model.WardrobeItem {
	if w == nil {
		return nil
	}
	return &model.WardrobeItem{
		Id:          w.Id,
		UserId:      w.UserId,
		AnalysisKey: w.AnalysisKey,
		Label:       w.Label,
		Category:    string(w.Category),
		Attributes:  attributesToJSON(w.Attributes),
		ImageURL:    w.ImageURL,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WardrobeMapper) ToEntities(items []*model.WardrobeItem) []*entity.WardrobeItem {
	out := make([]*entity.WardrobeItem, 0, len(items))
	for _, w := range items {
		out = append(out, m.ToEntity(w))
	}
	return out
}

func attributesFromJSON(raw datatypes.JSON) entity.ItemAttributes {
	var attrs entity.ItemAttributes
	if len(raw) == 0 {
		return attrs
	}
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return entity.ItemAttributes{}
	}
	attrs.Vibes = vibe.NormalizeVibes(attrs.Vibes)
	return attrs
}

func attributesToJSON(attrs entity.ItemAttributes) datatypes.JSON {
	attrs.Vibes = vibe.NormalizeVibes(attrs.Vibes)
	b, err := json.Marshal(attrs)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}
