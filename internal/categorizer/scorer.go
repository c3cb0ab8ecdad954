package categorizer

import (
	"math"
	"strings"

	"fjacquet/expense-categorizer/internal/models"
	"fjacquet/expense-categorizer/internal/textutils"
)

// Input is a cleaned description plus its optional amount.
type Input struct {
	Text      string
	Amount    float64
	HasAmount bool
}

// NewInput builds an Input from an already cleaned description. NaN,
// infinite and negative amounts are treated as absent.
func NewInput(cleaned string, amount *float64) Input {
	in := Input{Text: cleaned}
	if amount != nil && !math.IsNaN(*amount) && !math.IsInf(*amount, 0) && *amount >= 0 {
		in.Amount = *amount
		in.HasAmount = true
	}
	return in
}

// Scorer computes one non-negative raw score per category, indexed in
// declaration order.
type Scorer interface {
	Name() string
	Score(snap *Snapshot, in Input) []float64
}

// NewScorer returns the scorer registered under variant.
func NewScorer(variant string) (Scorer, error) {
	switch variant {
	case "", models.VariantBrandAware:
		return NewBrandAwareScorer(DefaultWeights()), nil
	case models.VariantPattern:
		return NewPatternScorer(), nil
	default:
		return nil, &UnknownVariantError{Variant: variant}
	}
}

// UnknownVariantError is returned by NewScorer for an unregistered variant.
type UnknownVariantError struct {
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return "unknown categorizer variant: " + e.Variant
}

// Weights are the relative weights of the brand-aware sub-scores.
type Weights struct {
	Brand     float64
	Priority  float64
	Keyword   float64
	Semantic  float64
	Context   float64
	Amount    float64
	Proximity float64
	Floor     float64
}

// DefaultWeights keeps brand well above every other term: a matched brand of
// confidence c contributes 1.75c, more than all other terms combined.
func DefaultWeights() Weights {
	return Weights{
		Brand:     1.75,
		Priority:  0.40,
		Keyword:   0.25,
		Semantic:  0.22,
		Context:   0.15,
		Amount:    0.08,
		Proximity: 0.05,
		Floor:     0.05,
	}
}

// BrandAwareScorer is the default scorer. It layers brand lookup, priority
// keywords, weighted keyword hits, semantic and context regexes, amount
// priors and word position.
type BrandAwareScorer struct {
	weights Weights
}

func NewBrandAwareScorer(w Weights) *BrandAwareScorer {
	return &BrandAwareScorer{weights: w}
}

func (s *BrandAwareScorer) Name() string {
	return models.VariantBrandAware
}

func (s *BrandAwareScorer) Score(snap *Snapshot, in Input) []float64 {
	w := s.weights
	brands := snap.BrandMatches(in.Text)
	words := strings.Fields(in.Text)

	scores := make([]float64, len(snap.categories))
	for i, c := range snap.categories {
		t := &snap.tables[i]
		score := w.Brand * brands[i]
		score += w.Priority * priorityScore(t.priority, in.Text)
		score += w.Keyword * keywordScore(c, t.keywords, in.Text)
		score += w.Semantic * semanticScore(t.semantic, in.Text)
		score += w.Context * contextScore(t.context, in.Text)
		if in.HasAmount && t.amount != nil {
			score += w.Amount * t.amount.Score(in.Amount)
		}
		score += w.Proximity * proximityScore(t.keywords, words)
		scores[i] = math.Max(score, w.Floor)
	}

	snap.applyRules(scores, in)
	return scores
}

func priorityScore(keywords []string, text string) float64 {
	score := 0.0
	for _, kw := range keywords {
		switch textutils.MatchKeyword(text, kw) {
		case textutils.WordMatch:
			score += 0.8
		case textutils.SubstringMatch:
			score += 0.6
		}
	}
	return math.Min(score, 1)
}

// keywordBonus returns the extra importance of keywords containing one of a
// few strongly indicative words.
func keywordBonus(c models.Category, keyword string) float64 {
	bonus := 0.0
	add := func(word string, value float64) {
		if strings.Contains(keyword, word) {
			bonus += value
		}
	}
	add("shop", 0.3)
	add("store", 0.3)
	switch c {
	case models.CategoryFood:
		add("coffee", 0.4)
		add("grocery", 0.4)
	case models.CategoryTransport:
		add("station", 0.3)
		add("gas", 0.4)
	case models.CategoryEntertainment:
		add("theater", 0.4)
		add("movie", 0.4)
	}
	return bonus
}

func keywordScore(c models.Category, keywords []string, text string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	weighted := 0.0
	hits := 0
	for _, kw := range keywords {
		kind := textutils.MatchKeyword(text, kw)
		if kind == textutils.NoMatch {
			continue
		}
		hits++
		importance := math.Min(float64(len(kw))/15, 1) + 0.3
		if kind == textutils.WordMatch {
			importance *= 2
		}
		weighted += importance + keywordBonus(c, kw)
	}
	if hits == 0 {
		return 0
	}
	score := weighted / float64(len(keywords)) * 3
	if hits > 1 {
		score *= 1 + float64(hits-1)*0.2
	}
	return math.Min(score, 1)
}

func semanticScore(patterns []compiledPattern, text string) float64 {
	score := 0.0
	for _, p := range patterns {
		if p.re.MatchString(text) {
			score += 0.3 + math.Min(float64(len(p.source))/100, 0.2)
		}
	}
	return math.Min(score, 1)
}

func contextScore(patterns []compiledPattern, text string) float64 {
	score := 0.0
	for _, p := range patterns {
		if p.re.MatchString(text) {
			score += p.weight
		}
	}
	return math.Min(score, 1)
}

const maxProximity = 0.3

func proximityScore(keywords []string, words []string) float64 {
	n := len(words)
	if n < 2 {
		return 0
	}
	score := 0.0
	for i, word := range words {
		position := 0.05
		if i < 2 || i >= n-2 {
			position = 0.1
		}
		for _, kw := range keywords {
			if textutils.WordContains(word, kw) {
				score += 0.05 + position
				if score >= maxProximity {
					return maxProximity
				}
			}
		}
	}
	return score
}

// PatternScorer is the simpler scorer: flat keyword and regex hits with a
// brand bonus, exact-or-similar word proximity and coarse amount ranges.
// A matched brand adds brandWeight times its confidence on top of the capped
// score, which outweighs any other category even after context rules.
type PatternScorer struct {
	floor       float64
	brandWeight float64
}

func NewPatternScorer() *PatternScorer {
	return &PatternScorer{floor: 0.01, brandWeight: 2.0}
}

func (s *PatternScorer) Name() string {
	return models.VariantPattern
}

func (s *PatternScorer) Score(snap *Snapshot, in Input) []float64 {
	brands := snap.BrandMatches(in.Text)
	words := strings.Fields(in.Text)
	scores := make([]float64, len(snap.categories))
	for i := range snap.categories {
		t := &snap.tables[i]
		score := 0.0
		for _, kw := range t.keywords {
			if textutils.MatchKeyword(in.Text, kw) == textutils.NoMatch {
				continue
			}
			if snap.IsBrand(kw) {
				score += 0.4
			} else {
				score += 0.2
			}
		}
		for _, p := range t.semantic {
			if p.re.MatchString(in.Text) {
				score += 0.3
			}
		}
		score += wordSimilarity(t.words, words)
		if in.HasAmount && t.amount != nil {
			score += coarseAmountScore(*t.amount, in.Amount)
		}
		scores[i] = math.Max(math.Min(score, 1), s.floor) + s.brandWeight*brands[i]
	}

	snap.applyRules(scores, in)
	return scores
}

func wordSimilarity(categoryWords, words []string) float64 {
	score := 0.0
	for _, w := range words {
		for _, cw := range categoryWords {
			switch {
			case w == cw:
				score += 0.1
			case len(w) >= 3 && len(cw) >= 3 && (strings.Contains(w, cw) || strings.Contains(cw, w)):
				score += 0.05
			default:
				continue
			}
			if score >= maxProximity {
				return maxProximity
			}
		}
	}
	return score
}

func coarseAmountScore(r AmountRange, amount float64) float64 {
	switch {
	case amount >= r.TypicalMin && amount <= r.TypicalMax:
		return r.Boost
	case amount > r.TypicalMax*3:
		return -0.05
	case amount < r.TypicalMin*0.3:
		return -0.03
	}
	return 0
}
