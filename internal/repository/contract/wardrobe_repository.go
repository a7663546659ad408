package contract

import (
	"context"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WardrobeRepository interface {
	Create(ctx context.Context, item *entity.WardrobeItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WardrobeItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WardrobeItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
