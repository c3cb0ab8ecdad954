// Package store provides functionality for storing and retrieving keyword
// overrides, learned keywords and user corrections.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"

	"gopkg.in/yaml.v3"
)

const (
	defaultCategoriesFile = "categories.yaml"
	defaultLearnedFile    = "learned_keywords.yaml"
	defaultDataDir        = "database"
)

// CategoryStore manages loading and saving of keyword files
type CategoryStore struct {
	CategoriesFile string
	LearnedFile    string

	logger logging.Logger
}

// NewCategoryStore creates a new store for keyword files
func NewCategoryStore(categoriesFile, learnedFile string, logger logging.Logger) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		LearnedFile:    learnedFile,
		logger:         logging.OrDiscard(logger),
	}
}

// FindConfigFile looks for a file in the current directory, ./config,
// ./database and ~/.config/expense-categorizer.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(defaultDataDir, filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "expense-categorizer", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// writeTarget returns where a file should be written: the existing copy if
// there is one, else the path itself when absolute, else ./database.
func (s *CategoryStore) writeTarget(filename string) string {
	if path, err := s.FindConfigFile(filename); err == nil {
		return path
	}
	if filepath.IsAbs(filename) || filepath.Dir(filename) != "." {
		return filename
	}
	return filepath.Join(defaultDataDir, filename)
}

// LoadCategories loads keyword overrides. A missing file yields no overrides.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = defaultCategoriesFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		s.logger.Debug("Keyword overrides file not found", logging.Field{Key: logging.FieldFile, Value: filename})
		return []models.CategoryConfig{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logLoaded("Loaded keyword overrides", filePath, len(categoriesConfig.Categories))
		return categoriesConfig.Categories, nil
	}

	// a bare list without the top-level key is accepted too
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}
	s.logLoaded("Loaded keyword overrides", filePath, len(categories))
	return categories, nil
}

// LoadLearnedKeywords loads keywords learned in earlier runs, keyed by
// category name. A missing file yields an empty map.
func (s *CategoryStore) LoadLearnedKeywords() (map[string][]string, error) {
	filename := s.learnedFile()

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		s.logger.Debug("Learned keywords file not found", logging.Field{Key: logging.FieldFile, Value: filename})
		return map[string][]string{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading learned keywords file: %w", err)
	}

	var learned models.LearnedKeywordsConfig
	if err := yaml.Unmarshal(data, &learned); err != nil {
		return nil, fmt.Errorf("error parsing learned keywords file %s: %w", filePath, err)
	}
	if learned.Learned == nil {
		learned.Learned = map[string][]string{}
	}

	s.logLoaded("Loaded learned keywords", filePath, len(learned.Learned))
	return learned.Learned, nil
}

// SaveLearnedKeywords writes the learned keywords, replacing the file.
// Nothing is written when there is nothing to save.
func (s *CategoryStore) SaveLearnedKeywords(learned map[models.Category][]string) error {
	if len(learned) == 0 {
		return nil
	}

	out := models.LearnedKeywordsConfig{Learned: make(map[string][]string, len(learned))}
	total := 0
	for category, tokens := range learned {
		if len(tokens) == 0 {
			continue
		}
		sorted := append([]string(nil), tokens...)
		sort.Strings(sorted)
		out.Learned[string(category)] = sorted
		total += len(sorted)
	}

	filePath := s.writeTarget(s.learnedFile())
	if err := writeYAML(filePath, out); err != nil {
		return fmt.Errorf("error saving learned keywords: %w", err)
	}

	s.logger.Debug("Saved learned keywords",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: total})
	return nil
}

func (s *CategoryStore) learnedFile() string {
	if s.LearnedFile == "" {
		return defaultLearnedFile
	}
	return s.LearnedFile
}

func (s *CategoryStore) logLoaded(msg, path string, n int) {
	s.logger.Debug(msg,
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: n})
}

// writeYAML marshals v to path, creating parent directories. The file is
// written to a temporary sibling first and renamed into place.
func writeYAML(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(fmt.Errorf("error replacing %s: %w", path, err), os.Remove(tmp))
	}
	return nil
}
