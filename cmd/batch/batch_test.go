package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/common"
	"fjacquet/expense-categorizer/internal/logging"
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

func TestBatchCommand_Flags(t *testing.T) {
	assert.Equal(t, "batch", Cmd.Use)
	for _, name := range []string{"input", "output"} {
		flag := Cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, name[:1], flag.Shorthand)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out", "categorized.csv")
	content := "description,amount\nStarbucks coffee,5.50\nDoctor visit,200\n,\nNetflix subscription,abc\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0600))

	engine := newEngine(t)
	count, err := Run(engine, in, out, ',', logging.NewMockLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "description,amount,category,confidence,suggested", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Starbucks coffee,5.50,Food & Dining,0.9800,Food & Dining:0.9800|"))
	assert.True(t, strings.HasPrefix(lines[2], "Doctor visit,200.00,Healthcare,0.9800,"))
	assert.True(t, strings.HasPrefix(lines[3], ",,Other,0.8500,"), "empty description gets the default result")

	want := engine.Predict("Netflix subscription", nil)
	assert.True(t, strings.HasPrefix(lines[4], "Netflix subscription,,"+string(want.Category)+","+common.FormatProbability(want.Confidence)))
}

func TestRun_Semicolon(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte("description;amount\nUber ride to airport;25,00\n"), 0600))

	count, err := Run(newEngine(t), in, out, ';', nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Uber ride to airport;25.00;Transportation;0.9800;")
}

func TestRun_Errors(t *testing.T) {
	engine := newEngine(t)

	_, err := Run(engine, "", "out.csv", ',', nil)
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = Run(engine, filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.csv"), ',', nil)
	assert.Error(t, err)

	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("description\ncoffee\n"), 0600))
	_, err = Run(engine, in, dir, ',', nil)
	assert.ErrorContains(t, err, "is a directory")
}
