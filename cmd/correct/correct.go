// Package correct records user corrections
package correct

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/expense-categorizer/cmd/root"
	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/spf13/cobra"
)

var (
	description string
	category    string
	amount      string
)

// Cmd represents the correct command
var Cmd = &cobra.Command{
	Use:   "correct",
	Short: "Record the right category for a description",
	Long: `Record the right category for a description.

The correction is appended to the configured correction log. When
categorizer.learn is enabled and the category is known, the words of the
description are learned as keywords of that category unless another category
already owns them. Learned keywords are saved when the command ends.

Example:
  expense-categorizer correct -d "Zorblax Kiosk 42" -c "Food & Dining" -a 12.50`,
	Run: correctFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Expense description")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Correct category")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Expense amount (optional)")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("category")
}

func correctFunc(cmd *cobra.Command, args []string) {
	sink := root.GetContainer().GetCorrectionSink()
	if err := Record(cmd.Context(), cmd.OutOrStdout(), sink, description, category, amount); err != nil {
		root.Log.Fatalf("Error recording correction: %v", err)
	}
}

// Record passes the correction to sink and reports the outcome on w.
func Record(ctx context.Context, w io.Writer, sink *categorizer.CorrectionSink, description, category, amount string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description must not be empty")
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category must not be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	outcome := sink.RecordCorrection(ctx, description, category, models.OptionalAmount(amount))

	var b strings.Builder
	if outcome.Logged {
		fmt.Fprintf(&b, "Correction %s recorded\n", outcome.Correction.ID)
	} else {
		fmt.Fprintf(&b, "Correction %s was not written to the correction log\n", outcome.Correction.ID)
	}
	if !outcome.KnownCategory {
		fmt.Fprintf(&b, "Unknown category %q: nothing learned\n", category)
	}
	if len(outcome.Learned) > 0 {
		fmt.Fprintf(&b, "Learned: %s\n", strings.Join(outcome.Learned, ", "))
	}
	if len(outcome.Skipped) > 0 {
		fmt.Fprintf(&b, "Skipped: %s\n", strings.Join(outcome.Skipped, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
