package contract

import (
	"context"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)
	FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error)
	CreateSubscription(ctx context.Context, sub *entity.UserSubscription) error
	CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error
	// ActivePlanFor resolves the plan governing a user's quota right now:
	// the newest in-period subscription's plan, or the free plan when none.
	ActivePlanFor(ctx context.Context, userId uuid.UUID) (*entity.SubscriptionPlan, error)
}
