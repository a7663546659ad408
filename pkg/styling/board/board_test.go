package board

import (
	"testing"

	"ai-stylist-be/pkg/styling/topic"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrdersDoDontTry(t *testing.T) {
	// Authored out of order on purpose.
	boards, ok := Resolve(topic.AddALayer)

	assert.True(t, ok)
	kinds := make([]Kind, len(boards))
	for i, b := range boards {
		kinds[i] = b.Kind
	}
	assert.Equal(t, []Kind{KindDo, KindDont, KindTry}, kinds)
}

func TestResolveUnknownTopic(t *testing.T) {
	_, ok := Resolve(topic.Topic("unknown"))
	assert.False(t, ok)
}

func TestNormalizeCleansLabels(t *testing.T) {
	got := Normalize([]Board{
		{Kind: KindTry, Label: "tip:belt the outer layer"},
		{Kind: KindDo, Label: "  tip: mark the narrowest point "},
		{Kind: KindDo, Label: "already clean"},
	})

	assert.Equal(t, "Mark the narrowest point", got[0].Label)
	assert.Equal(t, "Already clean", got[1].Label)
	assert.Equal(t, "Belt the outer layer", got[2].Label)
}

func TestNormalizeStableWithinKind(t *testing.T) {
	got := Normalize([]Board{
		{Kind: KindDo, Label: "first"},
		{Kind: KindTry, Label: "between"},
		{Kind: KindDo, Label: "second"},
	})

	assert.Equal(t, "First", got[0].Label)
	assert.Equal(t, "Second", got[1].Label)
	assert.Equal(t, "Between", got[2].Label)
}

func TestEveryTopicHasBoards(t *testing.T) {
	for _, tp := range []topic.Topic{
		topic.AddALayer,
		topic.AnchorWithNeutrals,
		topic.BalanceProportions,
		topic.ElevateBasics,
		topic.MixTextures,
		topic.DefineTheWaist,
	} {
		boards, ok := Resolve(tp)
		assert.True(t, ok, string(tp))
		assert.NotEmpty(t, boards, string(tp))
	}
}
