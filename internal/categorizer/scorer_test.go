package categorizer

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"fjacquet/expense-categorizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestNewInput(t *testing.T) {
	tests := []struct {
		name      string
		amount    *float64
		hasAmount bool
	}{
		{"nil", nil, false},
		{"positive", ptr(12.5), true},
		{"zero", ptr(0), true},
		{"negative", ptr(-5), false},
		{"nan", ptr(math.NaN()), false},
		{"infinite", ptr(math.Inf(1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput("text", tt.amount)
			assert.Equal(t, tt.hasAmount, in.HasAmount)
			if tt.hasAmount {
				assert.Equal(t, *tt.amount, in.Amount)
			} else {
				assert.Zero(t, in.Amount)
			}
		})
	}
}

func TestNewScorer(t *testing.T) {
	s, err := NewScorer("")
	require.NoError(t, err)
	assert.Equal(t, models.VariantBrandAware, s.Name())

	s, err = NewScorer(models.VariantPattern)
	require.NoError(t, err)
	assert.Equal(t, models.VariantPattern, s.Name())

	_, err = NewScorer("neural")
	var unknown *UnknownVariantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "neural", unknown.Variant)
}

func TestAmountRange_Score(t *testing.T) {
	food := defaultAmountRanges()[models.CategoryFood]

	tests := []struct {
		amount float64
		want   float64
	}{
		{20, 0.15},
		{8, 0.15},
		{100, 0.105},
		{3, 0.105},
		{200, 0},
		{400, -0.08},
		{2.5, 0},
		{1, -0.04},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.amount), func(t *testing.T) {
			assert.InDelta(t, tt.want, food.Score(tt.amount), 1e-9)
		})
	}
}

func TestPriorityScore(t *testing.T) {
	keywords := []string{"bus", "ride", "scooter"}

	assert.InDelta(t, 0.8, priorityScore(keywords, "city bus"), 1e-9)
	assert.InDelta(t, 1.0, priorityScore(keywords, "bus ride"), 1e-9, "capped at 1")
	assert.InDelta(t, 0.6, priorityScore(keywords, "scooters rental"), 1e-9)
	assert.Zero(t, priorityScore(keywords, "busy day"), "short keywords need a whole word")
}

func fillerKeywords(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("filler%02d", i)
	}
	return out
}

func TestKeywordScore(t *testing.T) {
	single := append([]string{"coffee"}, fillerKeywords(29)...)
	// coffee: (6/15 + 0.3) * 2 + 0.4 bonus = 1.8; 1.8 / 30 * 3
	assert.InDelta(t, 0.18, keywordScore(models.CategoryFood, single, "coffee"), 1e-9)
	// no bonus outside food: 1.4 / 30 * 3
	assert.InDelta(t, 0.14, keywordScore(models.CategoryShopping, single, "coffee"), 1e-9)

	double := append([]string{"coffee", "latte"}, fillerKeywords(28)...)
	// (1.8 + (5/15 + 0.3) * 2) / 30 * 3 * 1.2
	want := (1.8 + (5.0/15+0.3)*2) / 30 * 3 * 1.2
	assert.InDelta(t, want, keywordScore(models.CategoryFood, double, "coffee latte"), 1e-9)

	assert.Equal(t, 1.0, keywordScore(models.CategoryFood, []string{"coffee"}, "coffee"), "capped at 1")
	assert.Zero(t, keywordScore(models.CategoryFood, nil, "coffee"))
	assert.Zero(t, keywordScore(models.CategoryFood, single, "tea"))
}

func TestKeywordBonus(t *testing.T) {
	assert.InDelta(t, 0.3, keywordBonus(models.CategoryBills, "coffee shop"), 1e-9)
	assert.InDelta(t, 0.7, keywordBonus(models.CategoryFood, "coffee shop"), 1e-9)
	assert.InDelta(t, 0.7, keywordBonus(models.CategoryTransport, "gas station"), 1e-9)
	assert.InDelta(t, 0.4, keywordBonus(models.CategoryEntertainment, "movie"), 1e-9)
	assert.Zero(t, keywordBonus(models.CategoryOther, "movie"))
}

func TestProximityScore(t *testing.T) {
	keywords := []string{"uber", "ride"}

	assert.Zero(t, proximityScore(keywords, []string{"uber"}), "needs two words")
	assert.InDelta(t, 0.3, proximityScore(keywords, []string{"uber", "ride"}), 1e-9)
	// middle words get the smaller position bonus
	words := []string{"a", "b", "ride", "c", "d"}
	assert.InDelta(t, 0.1, proximityScore(keywords, words), 1e-9)
	assert.Zero(t, proximityScore(keywords, []string{"nothing", "here"}))
}

func TestSemanticAndContextScore(t *testing.T) {
	snap := newDefaultStore(t).Snapshot()
	food := snap.tables[models.CategoryFood.Index()]

	// both of the first two food patterns are long enough for the 0.2 cap
	assert.InDelta(t, 1.0, semanticScore(food.semantic, "starbucks coffee"), 1e-9)
	assert.InDelta(t, 0.5, semanticScore(food.semantic, "coffee"), 1e-9)
	assert.Zero(t, semanticScore(food.semantic, "xqzv"))

	assert.InDelta(t, 0.55, contextScore(food.context, "food delivery"), 1e-9)
	assert.Zero(t, contextScore(food.context, "xqzv"))
}

func TestBrandAwareScorer_Score(t *testing.T) {
	snap := newDefaultStore(t).Snapshot()
	scorer := NewBrandAwareScorer(DefaultWeights())

	t.Run("nothing matches", func(t *testing.T) {
		scores := scorer.Score(snap, NewInput("xqzv plmk", nil))
		require.Len(t, scores, models.CategoryCount())
		for _, s := range scores {
			assert.InDelta(t, 0.05, s, 1e-12)
		}
	})

	t.Run("brand dominates", func(t *testing.T) {
		scores := scorer.Score(snap, NewInput("starbucks coffee", ptr(5.5)))
		food := scores[models.CategoryFood.Index()]
		assert.Greater(t, food, 1.7)
		for i, s := range scores {
			if i != models.CategoryFood.Index() {
				assert.Less(t, s, food)
			}
		}
	})

	t.Run("context rules add boosts", func(t *testing.T) {
		without := scorer.Score(snap, NewInput("xqzv", nil))
		with := scorer.Score(snap, NewInput("xqzv airport", nil))
		assert.Greater(t, with[models.CategoryTravel.Index()], without[models.CategoryTravel.Index()]+0.25-1e-9)

		small := scorer.Score(snap, NewInput("xqzv", ptr(4)))
		assert.InDelta(t, 0.25, small[models.CategoryFood.Index()], 1e-9)
		assert.InDelta(t, 0.15, small[models.CategoryTransport.Index()], 1e-9)
	})
}

func TestContextRule_Applies(t *testing.T) {
	tests := []struct {
		name      string
		rule      ContextRule
		text      string
		amount    float64
		hasAmount bool
		want      bool
	}{
		{"term present", ContextRule{Terms: []string{"airport"}}, "airport lounge", 0, false, true},
		{"term inside word", ContextRule{Terms: []string{"com"}}, "comcast bill", 0, false, false},
		{"amount above", ContextRule{Amount: &AmountCondition{Above: 500}}, "x", 501, true, true},
		{"amount equal to bound", ContextRule{Amount: &AmountCondition{Above: 500}}, "x", 500, true, false},
		{"amount absent", ContextRule{Amount: &AmountCondition{Above: 500}}, "x", 0, false, false},
		{"amount window", ContextRule{Amount: &AmountCondition{Above: 0, Below: 10}}, "x", 9.99, true, true},
		{"zero outside window", ContextRule{Amount: &AmountCondition{Above: 0, Below: 10}}, "x", 0, true, false},
		{"terms and amount", ContextRule{Terms: []string{"buy"}, Amount: &AmountCondition{Above: 100}}, "buy tv", 50, true, false},
		{"empty rule", ContextRule{}, "anything", 1, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.applies(tt.text, tt.amount, tt.hasAmount))
		})
	}
}

func TestPatternScorer_Score(t *testing.T) {
	snap := newDefaultStore(t).Snapshot()
	scorer := NewPatternScorer()

	scores := scorer.Score(snap, NewInput("xqzv plmk", nil))
	for _, s := range scores {
		assert.InDelta(t, 0.01, s, 1e-12)
	}

	scores = scorer.Score(snap, NewInput("netflix subscription", ptr(15.99)))
	ent := scores[models.CategoryEntertainment.Index()]
	// capped at 1, then 2 x 0.98 for the brand and 0.2 for the recurring rule
	assert.InDelta(t, 3.16, ent, 1e-9)
	for i, s := range scores {
		if i != models.CategoryEntertainment.Index() {
			assert.Less(t, s, ent)
		}
	}
}

func TestPatternScorer_BrandOutweighsContextRules(t *testing.T) {
	snap := newDefaultStore(t).Snapshot()
	scorer := NewPatternScorer()

	scores := scorer.Score(snap, NewInput("uber ride to airport", ptr(25)))
	transport := scores[models.CategoryTransport.Index()]
	for i, s := range scores {
		if i != models.CategoryTransport.Index() {
			assert.Less(t, s, transport, "%s", snap.categories[i])
		}
	}

	// subway is a transit keyword but a food brand
	scores = scorer.Score(snap, NewInput("subway", nil))
	food := scores[models.CategoryFood.Index()]
	assert.Greater(t, food, scores[models.CategoryTransport.Index()])
}

func TestCoarseAmountScore(t *testing.T) {
	r := AmountRange{TypicalMin: 10, TypicalMax: 100, Boost: 0.08}
	assert.InDelta(t, 0.08, coarseAmountScore(r, 50), 1e-9)
	assert.InDelta(t, -0.05, coarseAmountScore(r, 301), 1e-9)
	assert.InDelta(t, -0.03, coarseAmountScore(r, 2), 1e-9)
	assert.Zero(t, coarseAmountScore(r, 200))
	assert.Zero(t, coarseAmountScore(r, 5))
}

func TestWordSimilarity(t *testing.T) {
	assert.InDelta(t, 0.1, wordSimilarity([]string{"taxi"}, []string{"taxi"}), 1e-9)
	assert.InDelta(t, 0.05, wordSimilarity([]string{"taxi"}, []string{"taxis"}), 1e-9)
	assert.Zero(t, wordSimilarity([]string{"ab"}, []string{"abc"}))
	many := []string{"a1x", "a2x", "a3x", "a4x"}
	assert.InDelta(t, 0.3, wordSimilarity(many, many), 1e-9, "capped")
}
