// Package batch handles categorization of CSV files
package batch

import (
	"time"

	"fjacquet/expense-categorizer/cmd/root"
	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/common"
	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/validation"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Categorize every row of a CSV file",
	Long: `Categorize every row of a CSV file.

The input needs a "description" column and may have an "amount" column. The
output repeats both and adds the category, its confidence and the top
suggestions. The delimiter is taken from csv.delimiter.

Example:
  expense-categorizer batch -i expenses.csv -o categorized.csv`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func batchFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	start := time.Now()
	count, err := Run(c.GetEngine(), inputFile, outputFile, c.GetConfig().Delimiter(), root.Log)
	if err != nil {
		root.Log.Fatalf("Error processing batch: %v", err)
	}
	root.Log.Info("Batch categorization completed",
		logging.Field{Key: logging.FieldCount, Value: count},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
}

// Run categorizes every row of inputFile into outputFile and returns the
// number of rows written.
func Run(engine *categorizer.Engine, inputFile, outputFile string, delimiter rune, logger logging.Logger) (int, error) {
	if err := validation.IsValidInputFile(inputFile); err != nil {
		return 0, err
	}
	if err := validation.IsValidOutputFile(outputFile); err != nil {
		return 0, err
	}

	rows, err := common.ReadBatchFile(inputFile, delimiter, logger)
	if err != nil {
		return 0, err
	}

	descriptions := make([]string, len(rows))
	amounts := make([]*float64, len(rows))
	for i, row := range rows {
		descriptions[i] = row.Description
		amounts[i] = row.ParsedAmount()
	}

	results := engine.PredictBatch(descriptions, amounts)

	out := make([]common.BatchOutputRow, len(rows))
	for i, row := range rows {
		out[i] = common.NewBatchOutputRow(row, results[i])
	}

	if err := common.WriteBatchFile(outputFile, out, delimiter, logger); err != nil {
		return 0, err
	}
	return len(out), nil
}
