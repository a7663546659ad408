// FILE: internal/service/scan_service.go
package service

import (
	"context"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/pkg/analyzer"

	"github.com/google/uuid"
)

type ScanService interface {
	// StartScan spends a scan credit and, when allowed, runs the analyzer.
	// An analyzer failure after the credit is spent is final; the client
	// retries with the same analysis key and pays nothing extra.
	StartScan(ctx context.Context, userId uuid.UUID, req *dto.StartScanRequest) (*dto.StartScanResponse, error)
}

type scanService struct {
	credits  CreditService
	plans    PlanService
	analyzer analyzer.Analyzer
	logger   logger.ILogger
}

func NewScanService(credits CreditService, plans PlanService, provider analyzer.Analyzer, log logger.ILogger) ScanService {
	return &scanService{credits: credits, plans: plans, analyzer: provider, logger: log}
}

func (s *scanService) StartScan(ctx context.Context, userId uuid.UUID, req *dto.StartScanRequest) (*dto.StartScanResponse, error) {
	result, err := s.credits.Consume(ctx, userId, req.AnalysisKey, entity.ActionScan)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return nil, s.quotaError(ctx, userId, entity.ActionScan)
	}

	scanned, err := s.analyzer.Analyze(ctx, req.ImageRef)
	if err != nil {
		s.logger.Error("SCAN", "Analyzer call failed", map[string]interface{}{
			"user_id": userId, "error": err.Error(),
		})
		return nil, err
	}

	return &dto.StartScanResponse{
		ScanId:  uuid.New(),
		Scanned: toScannedDTO(scanned),
	}, nil
}

// quotaError enriches a denial with the current counters for the paywall.
func (s *scanService) quotaError(ctx context.Context, userId uuid.UUID, kind entity.ActionKind) error {
	qe := &dto.QuotaExceededError{Kind: kind}
	if usage, err := s.plans.GetUserUsageStatus(ctx, userId); err == nil {
		switch kind {
		case entity.ActionScan:
			qe.Limit = usage.ScansLimit
			qe.Used = usage.ScansUsed
		case entity.ActionWardrobeAdd:
			qe.Limit = usage.AddsLimit
			qe.Used = usage.AddsUsed
		}
	}
	return qe
}

func toScannedDTO(in *entity.ScannedItem) *dto.ScannedItem {
	if in == nil {
		return nil
	}
	return &dto.ScannedItem{
		Category:    string(in.Category),
		StyleTags:   in.StyleTags,
		ColorFamily: string(in.ColorFamily),
		Formality:   string(in.Formality),
	}
}
