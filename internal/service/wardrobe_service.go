// FILE: internal/service/wardrobe_service.go
package service

import (
	"context"
	"errors"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/pkg/styling/vibe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WardrobeService interface {
	// AddItem spends a wardrobe-add credit and stores the garment. Replayed
	// analysis keys do not spend a second credit and resolve to the item
	// the first pass stored instead of creating another row.
	AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddWardrobeItemRequest) (*dto.WardrobeItemResponse, error)
	List(ctx context.Context, userId uuid.UUID) (*dto.WardrobeListResponse, error)
}

type wardrobeService struct {
	uowFactory unitofwork.RepositoryFactory
	credits    CreditService
	plans      PlanService
	logger     logger.ILogger
}

func NewWardrobeService(uowFactory unitofwork.RepositoryFactory, credits CreditService, plans PlanService, log logger.ILogger) WardrobeService {
	return &wardrobeService{uowFactory: uowFactory, credits: credits, plans: plans, logger: log}
}

func (s *wardrobeService) AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddWardrobeItemRequest) (*dto.WardrobeItemResponse, error) {
	result, err := s.credits.Consume(ctx, userId, req.AnalysisKey, entity.ActionWardrobeAdd)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return nil, s.quotaError(ctx, userId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if result.Replayed {
		stored, err := s.storedItem(ctx, uow, userId, req.AnalysisKey)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return toWardrobeItemResponse(stored), nil
		}
		// Credit committed but the item write never landed; finish it now.
	}

	cat, _ := entity.ParseCategory(req.Item.Category)
	item := &entity.WardrobeItem{
		Id:          uuid.New(),
		UserId:      userId,
		AnalysisKey: req.AnalysisKey,
		Label:       req.Label,
		Category:    cat,
		Attributes: entity.ItemAttributes{
			Vibes:       vibe.Normalize(req.Item.StyleTags),
			ColorFamily: entity.ColorFamily(req.Item.ColorFamily),
			Formality:   entity.Formality(req.Item.Formality),
		},
		ImageURL: req.ImageRef,
	}

	if err := uow.WardrobeRepository().Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent replay won the insert race; its row is the item.
			stored, ferr := s.storedItem(ctx, uow, userId, req.AnalysisKey)
			if ferr == nil && stored != nil {
				return toWardrobeItemResponse(stored), nil
			}
		}
		s.logger.Error("WARDROBE", "Failed to store item", map[string]interface{}{
			"user_id": userId, "error": err.Error(),
		})
		return nil, err
	}

	return toWardrobeItemResponse(item), nil
}

func (s *wardrobeService) storedItem(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, analysisKey string) (*entity.WardrobeItem, error) {
	return uow.WardrobeRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("analysis_key", analysisKey),
	)
}

func (s *wardrobeService) List(ctx context.Context, userId uuid.UUID) (*dto.WardrobeListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.WardrobeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.WardrobeItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toWardrobeItemResponse(it))
	}
	return &dto.WardrobeListResponse{Items: out, Count: len(out)}, nil
}

func (s *wardrobeService) quotaError(ctx context.Context, userId uuid.UUID) error {
	qe := &dto.QuotaExceededError{Kind: entity.ActionWardrobeAdd}
	if usage, err := s.plans.GetUserUsageStatus(ctx, userId); err == nil {
		qe.Limit = usage.AddsLimit
		qe.Used = usage.AddsUsed
	}
	return qe
}

func toWardrobeItemResponse(it *entity.WardrobeItem) *dto.WardrobeItemResponse {
	vibes := make([]string, 0, len(it.Attributes.Vibes))
	for _, v := range it.Attributes.Vibes {
		vibes = append(vibes, string(v))
	}
	return &dto.WardrobeItemResponse{
		Id:       it.Id,
		Label:    it.Label,
		Category: string(it.Category),
		Vibes:    vibes,
		ImageURL: it.ImageURL,
	}
}
