package store

import (
	"context"

	"fjacquet/expense-categorizer/internal/models"
)

// KeywordFiles loads keyword overrides and loads and saves learned keywords.
type KeywordFiles interface {
	LoadCategories() ([]models.CategoryConfig, error)
	LoadLearnedKeywords() (map[string][]string, error)
	SaveLearnedKeywords(learned map[models.Category][]string) error
}

// CorrectionLog is a durable, append-only correction record.
type CorrectionLog interface {
	Append(ctx context.Context, correction models.Correction) error
	List(ctx context.Context) ([]models.Correction, error)
	Close() error
}

var (
	_ KeywordFiles  = (*CategoryStore)(nil)
	_ KeywordFiles  = (*MockCategoryStore)(nil)
	_ CorrectionLog = (*YAMLCorrectionLog)(nil)
	_ CorrectionLog = (*SQLiteCorrectionLog)(nil)
	_ CorrectionLog = (*MemoryCorrectionLog)(nil)
)
