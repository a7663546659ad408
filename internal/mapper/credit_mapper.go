package mapper

import (
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/model"
)

type CreditMapper struct{}

func NewCreditMapper() *CreditMapper {
	return &CreditMapper{}
}

func (m *CreditMapper) ToEntity(t *model.CreditTransaction) *entity.CreditTransaction {
	if t == nil {
		return nil
	}
	return &entity.CreditTransaction{
		Id:          t.Id,
		UserId:      t.UserId,
		ActionKind:  entity.ActionKind(t.ActionKind),
		AnalysisKey: t.AnalysisKey,
		Allowed:     t.Allowed,
		Reason:      entity.ConsumeReason(t.Reason),
		CreatedAt:   t.CreatedAt,
	}
}

func (m *CreditMapper) ToModel(t *entity.CreditTransaction) *model.CreditTransaction {
	if t == nil {
		return nil
	}
	return &model.CreditTransaction{
		Id:          t.Id,
		UserId:      t.UserId,
		ActionKind:  string(t.ActionKind),
		AnalysisKey: t.AnalysisKey,
		Allowed:     t.Allowed,
		Reason:      string(t.Reason),
		CreatedAt:   t.CreatedAt,
	}
}
