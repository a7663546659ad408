package mapper

import (
	"encoding/json"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/model"
	"ai-stylist-be/pkg/styling/vibe"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                u.Id,
		Email:             u.Email,
		FullName:          u.FullName,
		Role:              entity.UserRole(u.Role),
		Status:            entity.UserStatus(u.Status),
		AvatarURL:         u.AvatarURL,
		StyleVibes:        vibesFromJSON(u.StyleVibes),
		ScansUsed:         u.ScansUsed,
		WardrobeAddsUsed:  u.WardrobeAddsUsed,
		ScanLimitOverride: u.ScanLimitOverride,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                u.Id,
		Email:             u.Email,
		FullName:          u.FullName,
		Role:              string(u.Role),
		Status:            string(u.Status),
		AvatarURL:         u.AvatarURL,
		StyleVibes:        vibesToJSON(u.StyleVibes),
		ScansUsed:         u.ScansUsed,
		WardrobeAddsUsed:  u.WardrobeAddsUsed,
		ScanLimitOverride: u.ScanLimitOverride,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		out = append(out, m.ToEntity(u))
	}
	return out
}

// vibesFromJSON re-normalizes on read: rows written before a vocabulary
// change still come out canonical.
func vibesFromJSON(raw datatypes.JSON) []vibe.Vibe {
	if len(raw) == 0 {
		return []vibe.Vibe{}
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return []vibe.Vibe{}
	}
	return vibe.Normalize(tags)
}

func vibesToJSON(vs []vibe.Vibe) datatypes.JSON {
	normalized := vibe.NormalizeVibes(vs)
	b, err := json.Marshal(normalized)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
