package implementation

import (
	"context"
	"errors"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/mapper"
	"ai-stylist-be/internal/model"
	"ai-stylist-be/internal/repository/contract"
	"ai-stylist-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error) {
	var plans []*model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Order("sort_order ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return r.mapper.PlansToEntities(plans), nil
}

func (r *SubscriptionRepositoryImpl) FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&plan), nil
}

func (r *SubscriptionRepositoryImpl) FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error) {
	var subs []*model.UserSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&subs).Error; err != nil {
		return nil, err
	}
	return r.mapper.SubscriptionsToEntities(subs), nil
}

func (r *SubscriptionRepositoryImpl) CreateSubscription(ctx context.Context, sub *entity.UserSubscription) error {
	modelSub := r.mapper.SubscriptionToModel(sub)
	if err := r.db.WithContext(ctx).Create(modelSub).Error; err != nil {
		return err
	}
	*sub = *r.mapper.SubscriptionToEntity(modelSub)
	return nil
}

func (r *SubscriptionRepositoryImpl) CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	modelPlan := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(modelPlan).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(modelPlan)
	return nil
}

// ActivePlanFor walks the user's in-period subscriptions newest-first and
// returns the plan of the first eligible one. Users without one get the
// seeded free plan, or the built-in copy when the table is unseeded.
func (r *SubscriptionRepositoryImpl) ActivePlanFor(ctx context.Context, userId uuid.UUID) (*entity.SubscriptionPlan, error) {
	subs, err := r.FindAllSubscriptions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveAt{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	for _, sub := range subs {
		// Canceled subscriptions keep access until the period ends.
		if sub.Status == entity.SubscriptionStatusActive || sub.Status == entity.SubscriptionStatusCanceled {
			plan, err := r.FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
			if err != nil {
				return nil, err
			}
			if plan != nil {
				return plan, nil
			}
		}
	}

	free, err := r.FindOnePlan(ctx, specification.Filter("slug", "free"))
	if err != nil {
		return nil, err
	}
	if free != nil {
		return free, nil
	}
	return entity.FreePlan(), nil
}
