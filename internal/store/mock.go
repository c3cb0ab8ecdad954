package store

import (
	"context"
	"sync"

	"fjacquet/expense-categorizer/internal/models"
)

// MockCategoryStore is an in-memory KeywordFiles for testing.
type MockCategoryStore struct {
	Categories []models.CategoryConfig
	Learned    map[string][]string
	Saved      map[models.Category][]string

	// Error flags for testing error conditions
	LoadCategoriesError error
	LoadLearnedError    error
	SaveLearnedError    error
}

// LoadCategories returns the mock categories.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}

// LoadLearnedKeywords returns a copy of the mock learned keywords.
func (m *MockCategoryStore) LoadLearnedKeywords() (map[string][]string, error) {
	if m.LoadLearnedError != nil {
		return nil, m.LoadLearnedError
	}
	result := make(map[string][]string, len(m.Learned))
	for k, v := range m.Learned {
		result[k] = append([]string(nil), v...)
	}
	return result, nil
}

// SaveLearnedKeywords records what would have been written.
func (m *MockCategoryStore) SaveLearnedKeywords(learned map[models.Category][]string) error {
	if m.SaveLearnedError != nil {
		return m.SaveLearnedError
	}
	m.Saved = learned
	return nil
}

// MemoryCorrectionLog keeps corrections in memory.
type MemoryCorrectionLog struct {
	mu          sync.Mutex
	Corrections []models.Correction
	AppendError error
	Closed      bool
}

// Append records the correction unless AppendError is set.
func (m *MemoryCorrectionLog) Append(_ context.Context, c models.Correction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendError != nil {
		return m.AppendError
	}
	m.Corrections = append(m.Corrections, c)
	return nil
}

// List returns the recorded corrections.
func (m *MemoryCorrectionLog) List(_ context.Context) ([]models.Correction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Correction(nil), m.Corrections...), nil
}

// Close marks the log closed.
func (m *MemoryCorrectionLog) Close() error {
	m.Closed = true
	return nil
}
