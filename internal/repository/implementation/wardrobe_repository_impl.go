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

type WardrobeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WardrobeMapper
}

func NewWardrobeRepository(db *gorm.DB) contract.WardrobeRepository {
	return &WardrobeRepositoryImpl{
		db:     db,
		mapper: mapper.NewWardrobeMapper(),
	}
}

func (r *WardrobeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WardrobeRepositoryImpl) Create(ctx context.Context, item *entity.WardrobeItem) error {
	modelItem := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(modelItem).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(modelItem)
	return nil
}

func (r *WardrobeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WardrobeItem{}).Error
}

func (r *WardrobeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WardrobeItem, error) {
	var modelItem model.WardrobeItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelItem), nil
}

func (r *WardrobeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WardrobeItem, error) {
	var modelItems []*model.WardrobeItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelItems).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelItems), nil
}

func (r *WardrobeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WardrobeItem{}), specs...)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
