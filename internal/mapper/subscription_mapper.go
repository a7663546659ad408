package mapper

import (
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) PlanToEntity(p *model.SubscriptionPlan) *entity.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &entity.SubscriptionPlan{
		Id:               p.Id,
		Name:             p.Name,
		Slug:             p.Slug,
		Tagline:          p.Tagline,
		Price:            p.Price,
		BillingPeriod:    entity.BillingPeriod(p.BillingPeriod),
		ScanLimit:        p.ScanLimit,
		WardrobeAddLimit: p.WardrobeAddLimit,
		Unlimited:        p.Unlimited,
		IsMostPopular:    p.IsMostPopular,
		IsActive:         p.IsActive,
		SortOrder:        p.SortOrder,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.SubscriptionPlan) *model.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &model.SubscriptionPlan{
		Id:               p.Id,
		Name:             p.Name,
		Slug:             p.Slug,
		Tagline:          p.Tagline,
		Price:            p.Price,
		BillingPeriod:    string(p.BillingPeriod),
		ScanLimit:        p.ScanLimit,
		WardrobeAddLimit: p.WardrobeAddLimit,
		Unlimited:        p.Unlimited,
		IsMostPopular:    p.IsMostPopular,
		IsActive:         p.IsActive,
		SortOrder:        p.SortOrder,
	}
}

func (m *SubscriptionMapper) PlansToEntities(plans []*model.SubscriptionPlan) []*entity.SubscriptionPlan {
	out := make([]*entity.SubscriptionPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, m.PlanToEntity(p))
	}
	return out
}

func (m *SubscriptionMapper) SubscriptionToEntity(s *model.UserSubscription) *entity.UserSubscription {
	if s == nil {
		return nil
	}
	return &entity.UserSubscription{
		Id:                 s.Id,
		UserId:             s.UserId,
		PlanId:             s.PlanId,
		Status:             entity.SubscriptionStatus(s.Status),
		CurrentPeriodStart: s.CurrentPeriodStart,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		CreatedAt:          s.CreatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToModel(s *entity.UserSubscription) *model.UserSubscription {
	if s == nil {
		return nil
	}
	return &model.UserSubscription{
		Id:                 s.Id,
		UserId:             s.UserId,
		PlanId:             s.PlanId,
		Status:             string(s.Status),
		CurrentPeriodStart: s.CurrentPeriodStart,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		CreatedAt:          s.CreatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionsToEntities(subs []*model.UserSubscription) []*entity.UserSubscription {
	out := make([]*entity.UserSubscription, 0, len(subs))
	for _, s := range subs {
		out = append(out, m.SubscriptionToEntity(s))
	}
	return out
}
