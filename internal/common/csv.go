// Package common provides the CSV input and output of batch categorization.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/gocarina/gocsv"
)

// BatchInputRow is one row of a batch input file.
type BatchInputRow struct {
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
}

// ParsedAmount returns the row amount, or nil when it is empty or malformed.
func (r BatchInputRow) ParsedAmount() *float64 {
	return models.OptionalAmount(r.Amount)
}

// BatchOutputRow is one row of a batch output file.
type BatchOutputRow struct {
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Confidence  string `csv:"confidence"`
	Suggested   string `csv:"suggested"`
}

// NewBatchOutputRow pairs an input row with its result. Suggestions are
// rendered as "Category:0.1234" joined by "|".
func NewBatchOutputRow(in BatchInputRow, result models.CategorizationResult) BatchOutputRow {
	suggested := make([]string, len(result.Suggested))
	for i, s := range result.Suggested {
		suggested[i] = fmt.Sprintf("%s:%s", s.Category, FormatProbability(s.Probability))
	}
	return BatchOutputRow{
		Description: in.Description,
		Amount:      models.FormatAmount(in.ParsedAmount()),
		Category:    string(result.Category),
		Confidence:  FormatProbability(result.Confidence),
		Suggested:   strings.Join(suggested, "|"),
	}
}

// FormatProbability renders a probability with four decimals.
func FormatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', 4, 64)
}

// ReadBatchCSV parses batch rows from r. The header must name a description
// column; the amount column is optional.
func ReadBatchCSV(r io.Reader, delimiter rune) ([]BatchInputRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var rows []BatchInputRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// WriteBatchCSV writes rows with a header line to w.
func WriteBatchCSV(w io.Writer, rows []BatchOutputRow, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadBatchFile reads batch rows from a file.
func ReadBatchFile(filePath string, delimiter rune, logger logging.Logger) ([]BatchInputRow, error) {
	logger = logging.OrDiscard(logger)
	logger.Info("Reading CSV file", logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadBatchCSV(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	logger.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteBatchFile writes rows to a file, creating its directory.
func WriteBatchFile(filePath string, rows []BatchOutputRow, delimiter rune, logger logging.Logger) error {
	logger = logging.OrDiscard(logger)

	if err := os.MkdirAll(filepath.Dir(filePath), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteBatchCSV(file, rows, delimiter); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	logger.Info("Successfully wrote results to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})
	return nil
}
