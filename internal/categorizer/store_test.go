package categorizer

import (
	"errors"
	"fmt"
	"testing"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultStore(t *testing.T) *KeywordStore {
	t.Helper()
	store, err := NewKeywordStore(DefaultTables(), nil, logging.NewMockLogger())
	require.NoError(t, err)
	return store
}

func count(list []string, s string) int {
	n := 0
	for _, item := range list {
		if item == s {
			n++
		}
	}
	return n
}

func TestNewKeywordStore_CleansAndDeduplicates(t *testing.T) {
	store := newDefaultStore(t)

	food := store.KeywordsFor(models.CategoryFood)
	assert.Equal(t, 1, count(food, "pizza"), "duplicates are removed")
	assert.Equal(t, 1, count(food, "starbucks"))
	assert.Contains(t, food, "chickfila")
	assert.Contains(t, food, "in n out")
	assert.Contains(t, store.KeywordsFor(models.CategoryShopping), "hm")
	assert.Contains(t, store.KeywordsFor(models.CategoryTransport), "7eleven")

	for _, c := range models.AllCategories() {
		for _, kw := range store.KeywordsFor(c) {
			assert.Equal(t, store.Cleaner().Clean(kw), kw, "keyword %q of %s is not clean", kw, c)
		}
	}
}

func TestNewKeywordStore_PatternsCompiled(t *testing.T) {
	store := newDefaultStore(t)

	patterns := store.PatternsFor(models.CategoryFood)
	require.Len(t, patterns, 6)
	assert.True(t, patterns[0].MatchString("LUNCH"), "patterns are case-insensitive")
	assert.Empty(t, store.PatternsFor(models.CategoryOther))
	assert.Nil(t, store.PatternsFor(models.Category("Nope")))
}

func TestNewKeywordStore_Inconsistencies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tables)
		table  string
		isErr  error
	}{
		{
			name:   "unknown keyword category",
			mutate: func(t *Tables) { t.Keywords["Groceries"] = []string{"milk"} },
			table:  "keywords",
			isErr:  ErrUnknownCategory,
		},
		{
			name:   "unknown strong indicator category",
			mutate: func(t *Tables) { t.StrongIndicators["Pets"] = []string{"dog"} },
			table:  "strong indicators",
			isErr:  ErrUnknownCategory,
		},
		{
			name: "unknown brand category",
			mutate: func(t *Tables) {
				t.Brands = append(t.Brands, BrandEntry{Token: "fido", Category: "Pets", Confidence: 0.9})
			},
			table: "brands",
			isErr: ErrUnknownCategory,
		},
		{
			name: "unknown context rule category",
			mutate: func(t *Tables) {
				t.ContextRules = append(t.ContextRules, ContextRule{
					Name: "pets", Terms: []string{"vet"}, Boosts: map[models.Category]float64{"Pets": 0.2},
				})
			},
			table: "context rules",
			isErr: ErrUnknownCategory,
		},
		{
			name: "unknown term floor category",
			mutate: func(t *Tables) {
				t.TermFloors = append(t.TermFloors, TermFloor{Term: "vet", Category: "Pets", Floor: 0.9})
			},
			table: "term floors",
			isErr: ErrUnknownCategory,
		},
		{
			name: "bad semantic pattern",
			mutate: func(t *Tables) {
				t.SemanticPatterns[models.CategoryFood] = append(t.SemanticPatterns[models.CategoryFood], `\b(unclosed`)
			},
			table: "semantic patterns",
		},
		{
			name: "brand mapped twice",
			mutate: func(t *Tables) {
				t.Brands = append(t.Brands, BrandEntry{Token: "Starbucks", Category: models.CategoryShopping, Confidence: 0.9})
			},
			table: "brands",
		},
		{
			name: "brand confidence out of range",
			mutate: func(t *Tables) {
				t.Brands = append(t.Brands, BrandEntry{Token: "acme", Category: models.CategoryShopping, Confidence: 1.2})
			},
			table: "brands",
		},
		{
			name: "inverted amount range",
			mutate: func(t *Tables) {
				t.AmountRanges[models.CategoryFood] = AmountRange{TypicalMin: 100, TypicalMax: 10}
			},
			table: "amount ranges",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := DefaultTables()
			tt.mutate(&tables)

			store, err := NewKeywordStore(tables, nil, nil)
			require.Error(t, err)
			assert.Nil(t, store)

			var inconsistency *StoreInconsistencyError
			require.True(t, errors.As(err, &inconsistency))
			assert.Equal(t, tt.table, inconsistency.Table)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}

func TestKeywordStore_BrandConfidenceFor(t *testing.T) {
	store := newDefaultStore(t)

	tests := []struct {
		token    string
		category models.Category
		conf     float64
		found    bool
	}{
		{"Starbucks", models.CategoryFood, 0.98, true},
		{"STAR BUCKS", models.CategoryFood, 0.98, true},
		{"Uber Eats", models.CategoryFood, 0.97, true},
		{"uber", models.CategoryTransport, 0.98, true},
		{"amazon.com", models.CategoryShopping, 0.95, true},
		{"Rite-Aid", models.CategoryHealthcare, 0.97, true},
		{"corner shop", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			category, conf, found := store.BrandConfidenceFor(tt.token)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.category, category)
			assert.InDelta(t, tt.conf, conf, 1e-9)
		})
	}
}

func TestSnapshot_BrandMatches(t *testing.T) {
	snap := newDefaultStore(t).Snapshot()
	food := models.CategoryFood.Index()
	transport := models.CategoryTransport.Index()

	tests := []struct {
		name      string
		text      string
		food      float64
		transport float64
	}{
		{"longer brand masks nested brand", "uber eats order", 0.97, 0},
		{"both brands present separately", "uber ride then uber eats", 0.97, 0.98},
		{"brand inside a word is ignored", "uberrima", 0, 0},
		{"plain brand", "lyft home", 0, 0.98},
		{"empty text", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snap.BrandMatches(tt.text)
			require.Len(t, got, models.CategoryCount())
			assert.InDelta(t, tt.food, got[food], 1e-9)
			assert.InDelta(t, tt.transport, got[transport], 1e-9)
		})
	}
}

func TestKeywordStore_Learn(t *testing.T) {
	store := newDefaultStore(t)
	before := store.Snapshot()

	added, err := store.Learn(models.CategoryFood, "Zorblax")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Contains(t, store.KeywordsFor(models.CategoryFood), "zorblax")
	assert.NotContains(t, before.Keywords(models.CategoryFood), "zorblax", "older snapshots are immutable")

	added, err = store.Learn(models.CategoryFood, "ZORBLAX")
	require.NoError(t, err)
	assert.False(t, added, "same-category duplicate is a no-op")
	assert.Equal(t, 1, count(store.KeywordsFor(models.CategoryFood), "zorblax"))

	_, err = store.Learn(models.CategoryTransport, "zorblax")
	assert.ErrorIs(t, err, ErrLearnCollision)

	_, err = store.Learn(models.CategoryTransport, "coffee")
	assert.ErrorIs(t, err, ErrLearnCollision)
	assert.NotContains(t, store.KeywordsFor(models.CategoryTransport), "coffee")

	_, err = store.Learn(models.Category("Pets"), "kibble")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = store.Learn(models.CategoryFood, "!!!")
	assert.ErrorIs(t, err, ErrEmptyToken)

	assert.Equal(t, map[models.Category][]string{models.CategoryFood: {"zorblax"}}, store.Learned())
}

func TestKeywordStore_LearnUniqueness(t *testing.T) {
	store := newDefaultStore(t)
	tokens := []string{"alpha", "bravo", "charlie", "coffee", "taxi", "hotel", "zulu"}

	for i, tok := range tokens {
		for _, c := range models.AllCategories()[i%3:] {
			_, _ = store.Learn(c, tok)
		}
	}

	owners := make(map[string][]models.Category)
	for _, c := range models.AllCategories() {
		for _, kw := range store.KeywordsFor(c) {
			owners[kw] = append(owners[kw], c)
		}
	}
	for _, tok := range []string{"alpha", "bravo", "charlie", "zulu"} {
		assert.Len(t, owners[tok], 1, "learned token %q", tok)
	}
	for _, tok := range []string{"coffee", "taxi", "hotel"} {
		assert.Len(t, owners[tok], countDefaultOwners(tok), "built-in token %q", tok)
	}
}

func countDefaultOwners(token string) int {
	n := 0
	for _, list := range DefaultTables().Keywords {
		for _, kw := range list {
			if kw == token {
				n++
				break
			}
		}
	}
	return n
}

func TestKeywordStore_Restore(t *testing.T) {
	logger := logging.NewMockLogger()
	store, err := NewKeywordStore(DefaultTables(), nil, logger)
	require.NoError(t, err)

	added := store.Restore(map[string][]string{
		"food & dining":  {"zorblax", "zorblax"},
		"Transportation": {"coffee"},
		"Pets":           {"kibble"},
	})

	assert.Equal(t, 1, added)
	assert.Contains(t, store.KeywordsFor(models.CategoryFood), "zorblax")
	assert.True(t, logger.HasEntry("WARN", "Ignoring learned keywords of unknown category"))
}

func TestTables_ApplyOverrides(t *testing.T) {
	tables := DefaultTables()
	require.NoError(t, tables.ApplyOverrides([]models.CategoryConfig{
		{Name: "shopping", Keywords: []string{"Manor", "Globus"}},
	}))
	store, err := NewKeywordStore(tables, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, store.KeywordsFor(models.CategoryShopping), "globus")

	err = tables.ApplyOverrides([]models.CategoryConfig{{Name: "Groceries", Keywords: []string{"coop"}}})
	assert.ErrorIs(t, err, ErrUnknownCategory)
	var inconsistency *StoreInconsistencyError
	assert.True(t, errors.As(err, &inconsistency))
}

func TestStoreInconsistencyError_Message(t *testing.T) {
	err := &StoreInconsistencyError{Table: "brands", Category: "Pets", Entry: "fido", Err: ErrUnknownCategory}
	assert.Equal(t, `inconsistent brands table: category "Pets" entry "fido": unknown category`, err.Error())

	err = &StoreInconsistencyError{Table: "keywords", Category: "Pets", Err: fmt.Errorf("boom")}
	assert.Equal(t, `inconsistent keywords table: category "Pets": boom`, err.Error())
}
