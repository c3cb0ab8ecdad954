package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorrection(id string, amount *float64) models.Correction {
	return models.Correction{
		ID:              id,
		Description:     "Zorblax Kiosk 42",
		CorrectCategory: "Food & Dining",
		Amount:          amount,
		RecordedAt:      time.Date(2024, 3, 1, 12, 30, 0, 123, time.UTC),
	}
}

func amountPtr(f float64) *float64 { return &f }

// correctionLogs returns one fresh instance of every file-backed log.
func correctionLogs(t *testing.T) map[string]CorrectionLog {
	t.Helper()
	dir := t.TempDir()

	sqliteLog, err := NewSQLiteCorrectionLog(filepath.Join(dir, "db", "corrections.db"), logging.NewMockLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteLog.Close() })

	return map[string]CorrectionLog{
		"yaml":   NewYAMLCorrectionLog(filepath.Join(dir, "yaml", "corrections.yaml"), logging.NewMockLogger()),
		"sqlite": sqliteLog,
	}
}

func TestCorrectionLogs_AppendAndList(t *testing.T) {
	for name, log := range correctionLogs(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			empty, err := log.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			first := testCorrection("c1", amountPtr(12.5))
			second := testCorrection("c2", nil)
			second.CorrectCategory = "Groceries"

			require.NoError(t, log.Append(ctx, first))
			require.NoError(t, log.Append(ctx, second))

			got, err := log.List(ctx)
			require.NoError(t, err)
			require.Len(t, got, 2)

			assert.Equal(t, "c1", got[0].ID)
			assert.Equal(t, first.Description, got[0].Description)
			require.NotNil(t, got[0].Amount)
			assert.Equal(t, 12.5, *got[0].Amount)
			assert.True(t, first.RecordedAt.Equal(got[0].RecordedAt))

			assert.Equal(t, "c2", got[1].ID)
			assert.Equal(t, "Groceries", got[1].CorrectCategory, "category kept verbatim")
			assert.Nil(t, got[1].Amount)
		})
	}
}

func TestCorrectionLogs_CancelledContext(t *testing.T) {
	for name, log := range correctionLogs(t) {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			assert.Error(t, log.Append(ctx, testCorrection("c1", nil)))
		})
	}
}

func TestYAMLCorrectionLog_ConcurrentAppend(t *testing.T) {
	log := NewYAMLCorrectionLog(filepath.Join(t.TempDir(), "corrections.yaml"), nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, log.Append(context.Background(), testCorrection(fmt.Sprintf("c%d", i), nil)))
		}(i)
	}
	wg.Wait()

	got, err := log.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestYAMLCorrectionLog_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.yaml")
	writeFile(t, path, "corrections: {broken")

	log := NewYAMLCorrectionLog(path, nil)
	assert.Error(t, log.Append(context.Background(), testCorrection("c1", nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "corrections: {broken", string(data), "a broken file is left untouched")
}

func TestSQLiteCorrectionLog_DuplicateID(t *testing.T) {
	log, err := NewSQLiteCorrectionLog(filepath.Join(t.TempDir(), "corrections.db"), nil)
	require.NoError(t, err)
	defer log.Close()

	ctx := context.Background()
	require.NoError(t, log.Append(ctx, testCorrection("c1", nil)))
	assert.Error(t, log.Append(ctx, testCorrection("c1", nil)))
}

func TestSQLiteCorrectionLog_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.db")
	ctx := context.Background()

	log, err := NewSQLiteCorrectionLog(path, nil)
	require.NoError(t, err)
	require.NoError(t, log.Append(ctx, testCorrection("c1", amountPtr(3))))
	require.NoError(t, log.Close())

	reopened, err := NewSQLiteCorrectionLog(path, nil)
	require.NoError(t, err, "migrations are idempotent")
	defer reopened.Close()

	got, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.db")
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'corrections'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "corrections", name)
}

func TestMemoryCorrectionLog(t *testing.T) {
	log := &MemoryCorrectionLog{}
	require.NoError(t, log.Append(context.Background(), testCorrection("c1", nil)))

	log.AppendError = assert.AnError
	assert.ErrorIs(t, log.Append(context.Background(), testCorrection("c2", nil)), assert.AnError)

	got, err := log.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, log.Close())
	assert.True(t, log.Closed)
}
