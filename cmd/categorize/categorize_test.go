package categorize

import (
	"bytes"
	"encoding/json"
	"testing"

	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *categorizer.Engine {
	t.Helper()
	store, err := categorizer.NewKeywordStore(categorizer.DefaultTables(), nil, nil)
	require.NoError(t, err)
	engine, err := categorizer.NewEngineForVariant(store, models.VariantBrandAware, nil)
	require.NoError(t, err)
	return engine
}

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Categorize")
	assert.NotNil(t, Cmd.Run)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"description", "d", ""},
		{"amount", "a", ""},
		{"format", "f", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := Cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}

	required := Cmd.Flags().Lookup("description").Annotations
	assert.Contains(t, required, "cobra_annotation_bash_completion_one_required_flag")
}

func TestCategorize(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	require.NoError(t, Categorize(&buf, engine, "Starbucks coffee", "5.50", "json"))

	var decoded struct {
		Description string          `json:"description"`
		Category    models.Category `json:"category"`
		Confidence  float64         `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Starbucks coffee", decoded.Description)
	assert.Equal(t, models.CategoryFood, decoded.Category)
	assert.InDelta(t, 0.98, decoded.Confidence, 1e-9)
}

func TestCategorize_MalformedAmountIsAbsent(t *testing.T) {
	engine := newEngine(t)

	var withBad, without bytes.Buffer
	require.NoError(t, Categorize(&withBad, engine, "hardware store", "twelve", "text"))
	require.NoError(t, Categorize(&without, engine, "hardware store", "", "text"))
	assert.Equal(t, without.String(), withBad.String())
}

func TestCategorize_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Categorize(&buf, newEngine(t), "coffee", "", "xml"))
}
