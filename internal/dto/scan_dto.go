package dto

import "github.com/google/uuid"

// StartScanRequest begins a scan: the credit is consumed first, then the
// analyzer runs. AnalysisKey is the client-generated idempotency token; a
// retried request reuses it and never spends a second credit.
type StartScanRequest struct {
	AnalysisKey string `json:"analysis_key" validate:"required,min=8,max=255"`
	ImageRef    string `json:"image_ref" validate:"required"`
}

type StartScanResponse struct {
	ScanId  uuid.UUID    `json:"scan_id"`
	Scanned *ScannedItem `json:"scanned_item"`
}

// AddWardrobeItemRequest consumes a wardrobe-add credit and stores the item.
type AddWardrobeItemRequest struct {
	AnalysisKey string       `json:"analysis_key" validate:"required,min=8,max=255"`
	Label       string       `json:"label" validate:"required,max=255"`
	Item        *ScannedItem `json:"item" validate:"required"`
	ImageRef    string       `json:"image_ref"`
}

type WardrobeItemResponse struct {
	Id       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	Category string    `json:"category"`
	Vibes    []string  `json:"vibes"`
	ImageURL string    `json:"image_url"`
}

type WardrobeListResponse struct {
	Items []WardrobeItemResponse `json:"items"`
	Count int                    `json:"count"`
}
