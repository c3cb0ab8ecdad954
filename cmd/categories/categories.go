// Package categories lists the known categories
package categories

import (
	"fmt"
	"io"

	"fjacquet/expense-categorizer/cmd/root"
	"fjacquet/expense-categorizer/internal/categorizer"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories in their stable order",
	Run: func(cmd *cobra.Command, args []string) {
		if err := List(cmd.OutOrStdout(), root.GetContainer().GetEngine()); err != nil {
			root.Log.Fatalf("Error listing categories: %v", err)
		}
	},
}

// List writes one category name per line.
func List(w io.Writer, engine *categorizer.Engine) error {
	for _, name := range engine.Categories() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
