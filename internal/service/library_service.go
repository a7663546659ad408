// FILE: internal/service/library_service.go
package service

import (
	"context"
	"fmt"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/pkg/catalog"
	"ai-stylist-be/pkg/events"

	"ai-stylist-be/internal/entity"
)

type LibraryService interface {
	GetCategory(ctx context.Context, rawCategory string) (*dto.LibraryCategoryResponse, error)
	// Retry re-fetches the remote library on user request and reports the
	// resulting state. The click itself is telemetry.
	Retry(ctx context.Context, topic, category string) (*dto.LibraryStateResponse, error)
	State() *dto.LibraryStateResponse
}

type libraryService struct {
	source    *catalog.Source
	telemetry ITelemetryService
	logger    logger.ILogger
}

func NewLibraryService(source *catalog.Source, telemetry ITelemetryService, log logger.ILogger) LibraryService {
	return &libraryService{source: source, telemetry: telemetry, logger: log}
}

func (s *libraryService) GetCategory(ctx context.Context, rawCategory string) (*dto.LibraryCategoryResponse, error) {
	cat, ok := entity.ParseCategory(rawCategory)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", rawCategory)
	}
	items := s.source.GetByCategory(cat)
	return &dto.LibraryCategoryResponse{
		Category: string(cat),
		Items:    toSuggestionItems(items),
		State:    s.source.State(),
	}, nil
}

func (s *libraryService) Retry(ctx context.Context, topic, category string) (*dto.LibraryStateResponse, error) {
	s.telemetry.Emit(events.NewRetryClicked(topic, category, string(s.source.State().ErrorKind)))

	if err := s.source.Retry(ctx); err != nil {
		// The state snapshot carries the outcome; a failed fetch is a
		// normal answer here, not a transport error.
		s.logger.Warn("LIBRARY", "Retry fetch failed", map[string]interface{}{"error": err.Error()})
	}
	return &dto.LibraryStateResponse{State: s.source.State()}, nil
}

func (s *libraryService) State() *dto.LibraryStateResponse {
	return &dto.LibraryStateResponse{State: s.source.State()}
}
