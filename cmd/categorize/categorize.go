// Package categorize handles single-description categorization
package categorize

import (
	"io"

	"fjacquet/expense-categorizer/cmd/common"
	"fjacquet/expense-categorizer/cmd/root"
	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/models"
	"fjacquet/expense-categorizer/internal/validation"

	"github.com/spf13/cobra"
)

var (
	description string
	amount      string
	format      string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize one expense description",
	Long: `Categorize one expense description, optionally with its amount.

Example:
  expense-categorizer categorize -d "Starbucks coffee" -a 5.50
  expense-categorizer categorize -d "Uber ride to airport" -f json`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Expense description to categorize")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Expense amount (optional)")
	Cmd.Flags().StringVarP(&format, "format", "f", common.FormatText, "Output format (text, json or yaml)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	engine := root.GetContainer().GetEngine()
	if err := Categorize(cmd.OutOrStdout(), engine, description, amount, format); err != nil {
		root.Log.Fatalf("Error categorizing description: %v", err)
	}
}

// Categorize predicts the category of description and writes the result to w.
// An empty or malformed amount is treated as absent.
func Categorize(w io.Writer, engine *categorizer.Engine, description, amount, format string) error {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	result := engine.Predict(description, models.OptionalAmount(amount))
	return common.WriteResult(w, description, result, format)
}
