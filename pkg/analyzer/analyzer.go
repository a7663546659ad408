// Package analyzer wraps the external image-analysis service. The core
// treats it as opaque: an image reference goes in, garment attributes come
// out. Quota is spent before this call, never refunded after it.
package analyzer

import (
	"context"

	"ai-stylist-be/internal/entity"
)

type Analyzer interface {
	Analyze(ctx context.Context, imageRef string) (*entity.ScannedItem, error)
}
