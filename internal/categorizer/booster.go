package categorizer

import (
	"fmt"
	"math"
	"sort"

	"fjacquet/expense-categorizer/internal/models"
)

// Tuning holds the thresholds and multipliers of the confidence booster.
type Tuning struct {
	// Ceiling caps the reported confidence.
	Ceiling float64

	// BoostAbove disables all multipliers when the normalized winner is not
	// strictly above it. Zero always boosts.
	BoostAbove float64

	BrandMultiplier        float64
	MultiStrongMultiplier  float64
	SingleStrongMultiplier float64
	MidThreshold           float64
	MidMultiplier          float64
	WeakMultiplier         float64

	// TermFloors enables the per-term confidence floors of the store.
	TermFloors bool

	DecisiveThreshold float64
	DecisiveFloor     float64

	// EmptyConfidence is the confidence of Other for an empty description.
	EmptyConfidence float64
}

// DefaultTuning is the brand-aware preset.
func DefaultTuning() Tuning {
	return Tuning{
		Ceiling:                0.98,
		BrandMultiplier:        4.5,
		MultiStrongMultiplier:  4.2,
		SingleStrongMultiplier: 3.8,
		MidThreshold:           0.15,
		MidMultiplier:          2.5,
		WeakMultiplier:         2.0,
		TermFloors:             true,
		DecisiveThreshold:      0.35,
		DecisiveFloor:          0.80,
		EmptyConfidence:        0.85,
	}
}

// PatternTuning is the preset paired with the pattern scorer: a single mild
// multiplier above 0.4 and a stricter decisive threshold.
func PatternTuning() Tuning {
	return Tuning{
		Ceiling:                0.98,
		BoostAbove:             0.4,
		BrandMultiplier:        1.5,
		MultiStrongMultiplier:  1.5,
		SingleStrongMultiplier: 1.5,
		MidThreshold:           0.4,
		MidMultiplier:          1.5,
		WeakMultiplier:         1.0,
		DecisiveThreshold:      0.6,
		DecisiveFloor:          0.80,
		EmptyConfidence:        0.80,
	}
}

// TuningFor returns the preset that goes with a scorer variant.
func TuningFor(variant string) Tuning {
	if variant == models.VariantPattern {
		return PatternTuning()
	}
	return DefaultTuning()
}

// Validate rejects tunings that would break the probability invariants.
func (t Tuning) Validate() error {
	n := float64(models.CategoryCount())
	switch {
	case t.Ceiling <= 0.5 || t.Ceiling >= 1:
		return fmt.Errorf("confidence ceiling %.3f must be in (0.5, 1)", t.Ceiling)
	case t.BrandMultiplier < 1 || t.MultiStrongMultiplier < 1 || t.SingleStrongMultiplier < 1 ||
		t.MidMultiplier < 1 || t.WeakMultiplier < 1:
		return fmt.Errorf("confidence multipliers must be at least 1")
	case t.DecisiveFloor < 0 || t.DecisiveFloor > t.Ceiling:
		return fmt.Errorf("decisive floor %.3f must be in [0, %.3f]", t.DecisiveFloor, t.Ceiling)
	case t.EmptyConfidence <= 1/n || t.EmptyConfidence > t.Ceiling:
		return fmt.Errorf("empty confidence %.3f must be in (%.3f, %.3f]", t.EmptyConfidence, 1/n, t.Ceiling)
	}
	return nil
}

// signals are the per-description facts the booster needs besides scores.
type signals struct {
	brands []float64
	text   string
	snap   *Snapshot
}

// calibrate normalizes raw scores, boosts the winner and rebuilds the
// distribution so that it still sums to 1 and the winner keeps its rank.
// It returns the winner index and the final distribution.
func (t Tuning) calibrate(raw []float64, sig signals) (int, []float64) {
	n := len(raw)
	norm := make([]float64, n)
	sum := 0.0
	for _, v := range raw {
		sum += v
	}
	if sum > 0 && !math.IsInf(sum, 0) && !math.IsNaN(sum) {
		for i, v := range raw {
			norm[i] = v / sum
		}
	} else {
		for i := range norm {
			norm[i] = 1 / float64(n)
		}
	}

	top := 0
	for i := 1; i < n; i++ {
		if norm[i] > norm[top] {
			top = i
		}
	}
	pre := norm[top]

	conf := t.boost(top, pre, sig)
	return top, rebuild(norm, top, pre, conf)
}

// boost raises the winner's normalized score. A brand of the winning
// category pins the confidence to at least the brand's own confidence,
// whether or not the multipliers apply.
func (t Tuning) boost(top int, pre float64, sig signals) float64 {
	conf := pre
	brand := sig.brands[top]
	if pre > t.BoostAbove {
		switch hits := sig.snap.strongHits(top, sig.text); {
		case brand > 0:
			conf = pre * t.BrandMultiplier
		case hits >= 2:
			conf = pre * t.MultiStrongMultiplier
		case hits == 1:
			conf = pre * t.SingleStrongMultiplier
		case pre > t.MidThreshold:
			conf = pre * t.MidMultiplier
		default:
			conf = pre * t.WeakMultiplier
		}
		conf = math.Min(conf, t.Ceiling)
	}
	conf = math.Max(conf, math.Min(brand, t.Ceiling))

	if t.TermFloors {
		conf = math.Max(conf, sig.snap.termFloor(top, sig.text))
	}
	if pre > t.DecisiveThreshold {
		conf = math.Max(conf, t.DecisiveFloor)
	}
	return math.Min(conf, t.Ceiling)
}

// rebuild gives the winner conf and shares the rest proportionally to the
// pre-boost values of the other categories.
func rebuild(norm []float64, top int, pre, conf float64) []float64 {
	n := len(norm)
	out := make([]float64, n)
	rest := 1 - pre
	for i, v := range norm {
		switch {
		case i == top:
			out[i] = conf
		case rest > 0:
			out[i] = v * (1 - conf) / rest
		default:
			out[i] = (1 - conf) / float64(n-1)
		}
	}
	return out
}

// emptyDistribution is the fixed answer for descriptions with nothing to score.
func (t Tuning) emptyDistribution(categories []models.Category) (int, []float64) {
	other := models.CategoryOther.Index()
	out := make([]float64, len(categories))
	share := (1 - t.EmptyConfidence) / float64(len(categories)-1)
	for i := range out {
		out[i] = share
	}
	out[other] = t.EmptyConfidence
	return other, out
}

const maxSuggestions = 3

// topSuggestions returns the highest probabilities, ties broken by
// declaration order.
func topSuggestions(categories []models.Category, probs []float64) []models.Suggestion {
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return probs[idx[a]] > probs[idx[b]]
	})
	if len(idx) > maxSuggestions {
		idx = idx[:maxSuggestions]
	}
	out := make([]models.Suggestion, 0, len(idx))
	for _, i := range idx {
		out = append(out, models.Suggestion{Category: categories[i], Probability: probs[i]})
	}
	return out
}
