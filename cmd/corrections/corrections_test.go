package corrections

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"fjacquet/expense-categorizer/internal/models"
	"fjacquet/expense-categorizer/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	amount := 12.5
	log := &store.MemoryCorrectionLog{Corrections: []models.Correction{
		{ID: "c1", Description: "Zorblax Kiosk", CorrectCategory: "Food & Dining", Amount: &amount, RecordedAt: time.Now()},
		{ID: "c2", Description: "Mystery", CorrectCategory: "Groceries", RecordedAt: time.Now()},
	}}

	var buf bytes.Buffer
	require.NoError(t, List(context.Background(), &buf, log))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "RECORDED"))
	assert.Contains(t, lines[1], "Food & Dining")
	assert.Contains(t, lines[1], "12.50")
	assert.Contains(t, lines[1], "Zorblax Kiosk")
	assert.Contains(t, lines[2], "Groceries")
}

func TestList_NoLog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(context.Background(), &buf, nil))
	assert.Equal(t, "No correction log configured\n", buf.String())
}
