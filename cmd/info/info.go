// Package info reports the active categorizer setup
package info

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/expense-categorizer/cmd/root"
	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/config"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the info command
var Cmd = &cobra.Command{
	Use:   "info",
	Short: "Show the scoring variant, keyword tables and correction backend",
	Run: func(cmd *cobra.Command, args []string) {
		c := root.GetContainer()
		if err := Show(cmd.OutOrStdout(), c.GetEngine(), c.GetConfig().Corrections); err != nil {
			root.Log.Fatalf("Error showing info: %v", err)
		}
	},
}

// Show writes the variant, the correction backend and per-category table
// sizes of engine.
func Show(w io.Writer, engine *categorizer.Engine, corrections config.CorrectionsConfig) error {
	snap := engine.Store().Snapshot()
	learned := engine.Store().Learned()

	learnedTotal := 0
	for _, tokens := range learned {
		learnedTotal += len(tokens)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Variant:\t%s\n", engine.Variant())
	fmt.Fprintf(tw, "Categories:\t%d\n", len(snap.Categories()))
	fmt.Fprintf(tw, "Brands:\t%d\n", snap.BrandCount())
	fmt.Fprintf(tw, "Learned keywords:\t%d\n", learnedTotal)
	fmt.Fprintf(tw, "Corrections:\t%s\n", describeBackend(corrections))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tKEYWORDS\tPATTERNS\tLEARNED")
	for _, c := range snap.Categories() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", c, len(snap.Keywords(c)), len(snap.Patterns(c)), len(learned[c]))
	}
	return tw.Flush()
}

func describeBackend(cfg config.CorrectionsConfig) string {
	switch cfg.Backend {
	case models.CorrectionBackendNone:
		return models.CorrectionBackendNone
	case models.CorrectionBackendSQLite:
		return fmt.Sprintf("%s (%s)", cfg.Backend, cfg.Database)
	case "", models.CorrectionBackendYAML:
		return fmt.Sprintf("%s (%s)", models.CorrectionBackendYAML, cfg.File)
	default:
		return cfg.Backend
	}
}
