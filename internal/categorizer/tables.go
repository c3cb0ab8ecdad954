package categorizer

import (
	"fjacquet/expense-categorizer/internal/models"
	"fjacquet/expense-categorizer/internal/textutils"
)

// Tables is the raw, uncompiled input of a KeywordStore.
type Tables struct {
	Keywords         map[models.Category][]string
	PriorityKeywords map[models.Category][]string
	StrongIndicators map[models.Category][]string
	SemanticPatterns map[models.Category][]string
	ContextPatterns  map[models.Category][]WeightedPattern
	Brands           []BrandEntry
	AmountRanges     map[models.Category]AmountRange
	TermFloors       []TermFloor
	ContextRules     []ContextRule
}

// WeightedPattern is a regular expression contributing a fixed weight when
// it matches.
type WeightedPattern struct {
	Pattern string
	Weight  float64
}

// BrandEntry ties a merchant token to a category with a confidence in (0, 1].
type BrandEntry struct {
	Token      string
	Category   models.Category
	Confidence float64
}

// AmountRange is the amount prior of a category.
type AmountRange struct {
	TypicalMin float64
	TypicalMax float64
	PeakMin    float64
	PeakMax    float64
	Boost      float64
	Penalty    float64
}

// Score returns the signed amount adjustment used by the brand-aware scorer.
func (r AmountRange) Score(amount float64) float64 {
	switch {
	case amount >= r.PeakMin && amount <= r.PeakMax:
		return r.Boost
	case amount >= r.TypicalMin && amount <= r.TypicalMax:
		return r.Boost * 0.7
	case amount > r.TypicalMax*2:
		return -r.Penalty
	case amount < r.TypicalMin*0.5:
		return -r.Penalty * 0.5
	}
	return 0
}

// TermFloor raises the confidence of Category to at least Floor when Term
// appears in the description and Category is the winner.
type TermFloor struct {
	Term     string
	Category models.Category
	Floor    float64
}

// AmountCondition bounds an amount on both sides, exclusively. A zero Below
// means no upper bound.
type AmountCondition struct {
	Above float64
	Below float64
}

func (c AmountCondition) holds(amount float64) bool {
	if amount <= c.Above {
		return false
	}
	return c.Below == 0 || amount < c.Below
}

// ContextRule adds fixed boosts to several categories when the description
// contains any of Terms and, if set, the amount satisfies Amount. A rule
// without terms is amount-only.
type ContextRule struct {
	Name   string
	Terms  []string
	Amount *AmountCondition
	Boosts map[models.Category]float64
}

func (r ContextRule) applies(text string, amount float64, hasAmount bool) bool {
	if r.Amount != nil && (!hasAmount || !r.Amount.holds(amount)) {
		return false
	}
	if len(r.Terms) == 0 {
		return r.Amount != nil
	}
	for _, term := range r.Terms {
		if textutils.ContainsPhrase(text, term) {
			return true
		}
	}
	return false
}

// ApplyOverrides appends user-supplied keywords to the keyword table. An
// override naming an unknown category is rejected.
func (t *Tables) ApplyOverrides(overrides []models.CategoryConfig) error {
	if len(overrides) == 0 {
		return nil
	}
	if t.Keywords == nil {
		t.Keywords = make(map[models.Category][]string)
	}
	for _, o := range overrides {
		cat, ok := models.ParseCategory(o.Name)
		if !ok {
			return &StoreInconsistencyError{Table: "keyword overrides", Category: o.Name, Err: ErrUnknownCategory}
		}
		t.Keywords[cat] = append(t.Keywords[cat], o.Keywords...)
	}
	return nil
}
