// Package common contains shared functionality for command handlers
package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	internalcommon "fjacquet/expense-categorizer/internal/common"
	"fjacquet/expense-categorizer/internal/models"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteResult.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// describedResult is a result together with the description it was computed for.
type describedResult struct {
	Description                 string `json:"description" yaml:"description"`
	models.CategorizationResult `yaml:",inline"`
}

// WriteResult renders a categorization result in the given format.
func WriteResult(w io.Writer, description string, result models.CategorizationResult, format string) error {
	out := describedResult{Description: description, CategorizationResult: result}

	switch strings.ToLower(format) {
	case FormatText, "":
		return writeText(w, out)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (must be %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

func writeText(w io.Writer, r describedResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Description: %s\n", r.Description)
	fmt.Fprintf(&b, "Category:    %s\n", r.Category)
	fmt.Fprintf(&b, "Confidence:  %s\n", internalcommon.FormatProbability(r.Confidence))
	b.WriteString("Suggestions:\n")
	for i, s := range r.Suggested {
		fmt.Fprintf(&b, "  %d. %-18s %s\n", i+1, s.Category, internalcommon.FormatProbability(s.Probability))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
