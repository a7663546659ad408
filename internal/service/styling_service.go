// FILE: internal/service/styling_service.go
package service

import (
	"context"
	"errors"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/pkg/catalog"
	"ai-stylist-be/pkg/events"
	"ai-stylist-be/pkg/styling/content"
	"ai-stylist-be/pkg/styling/recipe"
	"ai-stylist-be/pkg/styling/topic"
	"ai-stylist-be/pkg/styling/vibe"

	"github.com/google/uuid"
)

const vibeLineMaxShown = 2

type StylingService interface {
	// ResolveContent builds the tip-sheet payload for one topic/category
	// request. An *content.UnresolvedError means "show nothing", not a bug.
	ResolveContent(ctx context.Context, userId uuid.UUID, req *dto.ResolveContentRequest) (*dto.ResolveContentResponse, error)
}

type stylingService struct {
	uowFactory unitofwork.RepositoryFactory
	source     *catalog.Source
	telemetry  ITelemetryService
	logger     logger.ILogger
}

func NewStylingService(uowFactory unitofwork.RepositoryFactory, source *catalog.Source, telemetry ITelemetryService, log logger.ILogger) StylingService {
	return &stylingService{
		uowFactory: uowFactory,
		source:     source,
		telemetry:  telemetry,
		logger:     log,
	}
}

func (s *stylingService) ResolveContent(ctx context.Context, userId uuid.UUID, req *dto.ResolveContentRequest) (*dto.ResolveContentResponse, error) {
	// Raw strings are parsed here, once. Invalid keys flow through as-is so
	// the resolver reports the precise unresolved reason.
	t, _ := topic.Parse(req.Topic)

	var cat entity.Category
	if req.TargetCategory != "" {
		if parsed, ok := entity.ParseCategory(req.TargetCategory); ok {
			cat = parsed
		}
	}

	scanned := toScannedEntity(req.Scanned)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	var userVibes []vibe.Vibe
	if user != nil {
		userVibes = vibe.NormalizeVibes(user.StyleVibes)
	}

	wardrobeCount, err := uow.WardrobeRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	var pool []entity.LibraryItem
	if cat != "" {
		pool = s.source.GetByCategory(cat)
	}

	resolved, err := content.Resolve(content.Request{
		Mode:           content.Mode(req.Mode),
		Topic:          t,
		Scanned:        scanned,
		UserVibes:      userVibes,
		TargetCategory: cat,
		Pool:           pool,
		WardrobeCount:  int(wardrobeCount),
	})
	if err != nil {
		var unresolved *content.UnresolvedError
		if errors.As(err, &unresolved) {
			s.telemetry.Emit(events.NewResolutionFailure(
				req.Topic,
				req.TargetCategory,
				vibe.Format(userVibes, vibeLineMaxShown),
				unresolved.Reason,
				string(s.source.State().ErrorKind),
			))
		}
		return nil, err
	}

	return toResolveResponse(resolved), nil
}

func toScannedEntity(in *dto.ScannedItem) *entity.ScannedItem {
	if in == nil {
		return nil
	}
	out := &entity.ScannedItem{
		StyleTags:   in.StyleTags,
		ColorFamily: entity.ColorFamily(in.ColorFamily),
		Formality:   entity.Formality(in.Formality),
	}
	if cat, ok := entity.ParseCategory(in.Category); ok {
		out.Category = cat
	}
	return out
}

func toResolveResponse(resolved *content.ResolvedContent) *dto.ResolveContentResponse {
	switch resolved.Kind {
	case content.KindEducational:
		return &dto.ResolveContentResponse{
			Kind:   string(content.KindEducational),
			Boards: resolved.Educational.Boards,
		}
	default:
		sug := resolved.Suggestions
		return &dto.ResolveContentResponse{
			Kind:        string(content.KindSuggestions),
			Heading:     sug.Heading,
			ShowAddCTA:  sug.ShowAddCTA,
			Items:       toSuggestionItems(sug.Items),
			MoreItems:   toSuggestionItems(sug.MoreItems),
			CanShowMore: sug.CanShowMore,
			Meta: &dto.SuggestionsMeta{
				RelaxedKeys: keysToStrings(sug.Meta.RelaxedKeys),
				LockedKeys:  keysToStrings(sug.Meta.LockedKeys),
				WasRelaxed:  sug.Meta.WasRelaxed,
			},
		}
	}
}

func keysToStrings(keys []recipe.Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}

func toSuggestionItems(items []entity.LibraryItem) []dto.SuggestionItem {
	out := make([]dto.SuggestionItem, 0, len(items))
	for _, it := range items {
		vibes := make([]string, 0, len(it.Attributes.Vibes))
		for _, v := range it.Attributes.Vibes {
			vibes = append(vibes, string(v))
		}
		out = append(out, dto.SuggestionItem{
			Id:       it.Id,
			Label:    it.Label,
			Category: string(it.Category),
			Vibes:    vibes,
			VibeLine: vibe.Format(it.Attributes.Vibes, vibeLineMaxShown),
			ImageURL: it.ImageURL,
		})
	}
	return out
}
