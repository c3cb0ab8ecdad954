package categories

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	store, err := categorizer.NewKeywordStore(categorizer.DefaultTables(), nil, nil)
	require.NoError(t, err)
	engine, err := categorizer.NewEngineForVariant(store, "", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, List(&buf, engine))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, models.CategoryCount())
	assert.Equal(t, "Food & Dining", lines[0])
	assert.Equal(t, "Other", lines[len(lines)-1])
}
