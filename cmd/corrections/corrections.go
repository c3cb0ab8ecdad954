// Package corrections lists recorded corrections
package corrections

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fjacquet/expense-categorizer/cmd/root"
	"fjacquet/expense-categorizer/internal/models"
	"fjacquet/expense-categorizer/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the corrections command
var Cmd = &cobra.Command{
	Use:   "corrections",
	Short: "List the recorded corrections",
	Run: func(cmd *cobra.Command, args []string) {
		log := root.GetContainer().GetCorrectionLog()
		if err := List(cmd.Context(), cmd.OutOrStdout(), log); err != nil {
			root.Log.Fatalf("Error listing corrections: %v", err)
		}
	},
}

// List writes a table of the corrections in log. A nil log means the none
// backend is configured.
func List(ctx context.Context, w io.Writer, log store.CorrectionLog) error {
	if log == nil {
		_, err := fmt.Fprintln(w, "No correction log configured")
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	corrections, err := log.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECORDED\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, c := range corrections {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.RecordedAt.Local().Format(time.DateTime), c.CorrectCategory, models.FormatAmount(c.Amount), c.Description)
	}
	return tw.Flush()
}
