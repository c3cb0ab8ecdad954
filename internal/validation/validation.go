// Package validation checks command inputs before any work is done.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// Output formats understood by the categorize command.
var outputFormats = []string{"text", "json", "yaml"}

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input file must be specified")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputFile checks that path can be written: it must be set and must
// not name a directory.
func IsValidOutputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output file must be specified")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	f := strings.ToLower(format)
	for _, known := range outputFormats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s",
		format, strings.Join(outputFormats, ", "))
}
