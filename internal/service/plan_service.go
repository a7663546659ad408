// FILE: internal/service/plan_service.go
package service

import (
	"context"
	"fmt"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type PlanService interface {
	GetAllActivePlans(ctx context.Context) ([]dto.PlanResponse, error)
	GetUserUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) PlanService {
	return &planService{uowFactory: uowFactory, logger: log}
}

func (s *planService) GetAllActivePlans(ctx context.Context) ([]dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.SubscriptionRepository().FindAllPlans(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		s.logger.Error("PLAN", "Failed to list plans", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}
	return out, nil
}

func (s *planService) GetUserUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userId)
	}

	plan, err := uow.SubscriptionRepository().ActivePlanFor(ctx, userId)
	if err != nil {
		return nil, err
	}

	scanLimit := plan.ScanLimit
	if user.ScanLimitOverride != nil {
		scanLimit = *user.ScanLimitOverride
	}
	if plan.Unlimited {
		scanLimit = entity.LimitUnlimited
	}
	addLimit := plan.WardrobeAddLimit
	if plan.Unlimited {
		addLimit = entity.LimitUnlimited
	}

	return &dto.UsageStatusResponse{
		UserId:         userId,
		PlanName:       plan.Name,
		PlanSlug:       plan.Slug,
		Unlimited:      plan.Unlimited,
		ScansUsed:      user.ScansUsed,
		ScansLimit:     scanLimit,
		ScansRemaining: remaining(scanLimit, user.ScansUsed),
		AddsUsed:       user.WardrobeAddsUsed,
		AddsLimit:      addLimit,
		AddsRemaining:  remaining(addLimit, user.WardrobeAddsUsed),
	}, nil
}

func remaining(limit, used int) int {
	if limit == entity.LimitUnlimited {
		return entity.LimitUnlimited
	}
	if used >= limit {
		return 0
	}
	return limit - used
}

func toPlanResponse(p *entity.SubscriptionPlan) dto.PlanResponse {
	return dto.PlanResponse{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Tagline:       p.Tagline,
		Price:         p.Price,
		BillingPeriod: string(p.BillingPeriod),
		IsMostPopular: p.IsMostPopular,
		Limits: dto.PlanLimitsDTO{
			Scans:        p.ScanLimit,
			WardrobeAdds: p.WardrobeAddLimit,
			Unlimited:    p.Unlimited,
		},
	}
}
