// Package models provides the data structures used throughout the application.
package models

import "time"

// CategoryConfig represents a category entry in the keyword overrides YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the keyword overrides YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// LearnedKeywordsConfig represents the structure of the learned keywords YAML file
type LearnedKeywordsConfig struct {
	Learned map[string][]string `yaml:"learned"`
}

// CategorizationRequest is one description to categorize, with an optional amount.
type CategorizationRequest struct {
	Description string
	Amount      *float64
}

// Suggestion is a ranked (category, probability) pair.
type Suggestion struct {
	Category    Category `json:"category" yaml:"category"`
	Probability float64  `json:"probability" yaml:"probability"`
}

// CategorizationResult is the outcome of a prediction.
//
// Confidence always equals AllProbabilities[Category], AllProbabilities holds
// one strictly positive entry per category and sums to 1, and Suggested holds
// up to three entries of AllProbabilities in descending order.
type CategorizationResult struct {
	Category         Category             `json:"category" yaml:"category"`
	Confidence       float64              `json:"confidence" yaml:"confidence"`
	AllProbabilities map[Category]float64 `json:"all_probabilities" yaml:"all_probabilities"`
	Suggested        []Suggestion         `json:"suggested" yaml:"suggested"`
}

// Correction is a user-supplied category for a description.
// CorrectCategory is kept verbatim, even when it is not a known category.
type Correction struct {
	ID              string    `json:"id" yaml:"id"`
	Description     string    `json:"description" yaml:"description"`
	CorrectCategory string    `json:"correct_category" yaml:"correct_category"`
	Amount          *float64  `json:"amount,omitempty" yaml:"amount,omitempty"`
	RecordedAt      time.Time `json:"recorded_at" yaml:"recorded_at"`
}

// CorrectionsLog represents the structure of the corrections YAML file
type CorrectionsLog struct {
	Corrections []Correction `yaml:"corrections"`
}
