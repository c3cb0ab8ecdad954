// Package categorizer assigns expense descriptions to one of a fixed set of
// categories. A KeywordStore holds the keyword, pattern and brand tables, a
// Scorer turns a cleaned description into raw per-category scores, and the
// booster calibrates them into a probability distribution.
package categorizer

import (
	"errors"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"
)

// Engine categorizes expense descriptions. Predict is safe for concurrent
// use and performs no I/O.
type Engine struct {
	store  *KeywordStore
	scorer Scorer
	tuning Tuning
	logger logging.Logger
}

// NewEngine wires a store, a scorer and a tuning together.
func NewEngine(store *KeywordStore, scorer Scorer, tuning Tuning, logger logging.Logger) (*Engine, error) {
	if store == nil {
		return nil, errors.New("keyword store is required")
	}
	if scorer == nil {
		return nil, errors.New("scorer is required")
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		store:  store,
		scorer: scorer,
		tuning: tuning,
		logger: logging.OrDiscard(logger),
	}, nil
}

// NewEngineForVariant builds an engine with the scorer and tuning preset of
// the named variant.
func NewEngineForVariant(store *KeywordStore, variant string, logger logging.Logger) (*Engine, error) {
	scorer, err := NewScorer(variant)
	if err != nil {
		return nil, err
	}
	return NewEngine(store, scorer, TuningFor(variant), logger)
}

// Store returns the keyword store the engine reads from.
func (e *Engine) Store() *KeywordStore {
	return e.store
}

// Variant returns the scorer name.
func (e *Engine) Variant() string {
	return e.scorer.Name()
}

// Predict categorizes one description. Descriptions that are empty after
// cleaning get a fixed distribution favouring Other.
func (e *Engine) Predict(description string, amount *float64) models.CategorizationResult {
	snap := e.store.Snapshot()
	cleaned := e.store.Cleaner().Clean(description)

	if cleaned == "" {
		top, probs := e.tuning.emptyDistribution(snap.categories)
		return buildResult(snap.categories, top, probs)
	}

	in := NewInput(cleaned, amount)
	raw := e.scorer.Score(snap, in)
	top, probs := e.tuning.calibrate(raw, signals{
		brands: snap.BrandMatches(cleaned),
		text:   cleaned,
		snap:   snap,
	})
	result := buildResult(snap.categories, top, probs)

	e.logger.WithFields(
		logging.Field{Key: logging.FieldDescription, Value: cleaned},
		logging.Field{Key: logging.FieldCategory, Value: string(result.Category)},
		logging.Field{Key: logging.FieldConfidence, Value: result.Confidence},
		logging.Field{Key: logging.FieldVariant, Value: e.scorer.Name()},
	).Debug("Description categorized")

	return result
}

// PredictRequest categorizes a request.
func (e *Engine) PredictRequest(req models.CategorizationRequest) models.CategorizationResult {
	return e.Predict(req.Description, req.Amount)
}

// PredictBatch categorizes descriptions in order. Missing amounts are
// treated as absent and surplus amounts are ignored.
func (e *Engine) PredictBatch(descriptions []string, amounts []*float64) []models.CategorizationResult {
	results := make([]models.CategorizationResult, len(descriptions))
	for i, d := range descriptions {
		var amount *float64
		if i < len(amounts) {
			amount = amounts[i]
		}
		results[i] = e.Predict(d, amount)
	}
	return results
}

// Categories returns the category names in declaration order.
func (e *Engine) Categories() []string {
	cats := models.AllCategories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

func buildResult(categories []models.Category, top int, probs []float64) models.CategorizationResult {
	all := make(map[models.Category]float64, len(categories))
	for i, c := range categories {
		all[c] = probs[i]
	}
	return models.CategorizationResult{
		Category:         categories[top],
		Confidence:       probs[top],
		AllProbabilities: all,
		Suggested:        topSuggestions(categories, probs),
	}
}
