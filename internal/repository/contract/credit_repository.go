package contract

import (
	"context"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"
)

type CreditRepository interface {
	Create(ctx context.Context, tx *entity.CreditTransaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CreditTransaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditTransaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
