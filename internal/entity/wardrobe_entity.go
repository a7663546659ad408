// FILE: internal/entity/wardrobe_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WardrobeItem is a garment the user has added to their own wardrobe.
// AnalysisKey is the client idempotency token of the add request; a replayed
// add resolves to the row already holding its key instead of a second row.
type WardrobeItem struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	AnalysisKey string
	Label       string
	Category    Category
	Attributes  ItemAttributes
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
