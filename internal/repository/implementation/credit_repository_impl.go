package implementation

import (
	"context"
	"errors"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/mapper"
	"ai-stylist-be/internal/model"
	"ai-stylist-be/internal/repository/contract"
	"ai-stylist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CreditRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CreditMapper
}

func NewCreditRepository(db *gorm.DB) contract.CreditRepository {
	return &CreditRepositoryImpl{
		db:     db,
		mapper: mapper.NewCreditMapper(),
	}
}

func (r *CreditRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CreditRepositoryImpl) Create(ctx context.Context, tx *entity.CreditTransaction) error {
	modelTx := r.mapper.ToModel(tx)
	if err := r.db.WithContext(ctx).Create(modelTx).Error; err != nil {
		return err
	}
	*tx = *r.mapper.ToEntity(modelTx)
	return nil
}

func (r *CreditRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CreditTransaction, error) {
	var modelTx model.CreditTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelTx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelTx), nil
}

func (r *CreditRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditTransaction, error) {
	var modelTxs []*model.CreditTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTxs).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.CreditTransaction, 0, len(modelTxs))
	for _, t := range modelTxs {
		out = append(out, r.mapper.ToEntity(t))
	}
	return out, nil
}

func (r *CreditRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CreditTransaction{}), specs...)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
