package content

import (
	"ai-stylist-be/pkg/styling/board"
	"ai-stylist-be/pkg/styling/ranking"
	"ai-stylist-be/pkg/styling/recipe"
)

// Resolve builds the content object for one tip sheet. Input problems come
// back as *UnresolvedError; the function never panics on caller data.
func Resolve(req Request) (*ResolvedContent, error) {
	if !req.Topic.Valid() {
		return nil, &UnresolvedError{Reason: ReasonUnknownTopic}
	}

	switch req.Mode {
	case ModeEducational:
		return resolveEducational(req)
	case ModeSuggestions:
		return resolveSuggestions(req)
	default:
		return nil, &UnresolvedError{Reason: ReasonUnknownMode}
	}
}

func resolveEducational(req Request) (*ResolvedContent, error) {
	boards, ok := board.Resolve(req.Topic)
	if !ok {
		return nil, &UnresolvedError{Reason: ReasonUnknownTopic}
	}
	return &ResolvedContent{
		Kind:        KindEducational,
		Educational: &Educational{Boards: boards},
	}, nil
}

func resolveSuggestions(req Request) (*ResolvedContent, error) {
	if req.TargetCategory == "" {
		return nil, &UnresolvedError{Reason: ReasonMissingCategory}
	}

	res := recipe.Resolve(req.Topic, req.TargetCategory, req.Scanned, req.Pool)

	scannedVibes := req.Scanned.Vibes()
	items := ranking.Rank(res.Items, scannedVibes, req.UserVibes)
	more := ranking.Rank(res.MoreItems, scannedVibes, req.UserVibes)

	heading, showCTA := headingFor(req.TargetCategory, len(items), req.WardrobeCount)

	return &ResolvedContent{
		Kind: KindSuggestions,
		Suggestions: &Suggestions{
			Items:       items,
			MoreItems:   more,
			CanShowMore: res.CanShowMore,
			Meta: SuggestionsMeta{
				RelaxedKeys: res.RelaxedKeys,
				LockedKeys:  res.LockedKeys,
				WasRelaxed:  res.WasRelaxed,
			},
			Heading:    heading,
			ShowAddCTA: showCTA,
		},
	}, nil
}
