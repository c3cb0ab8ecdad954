package main

import (
	"fmt"
	"os"

	"fjacquet/expense-categorizer/cmd/batch"
	"fjacquet/expense-categorizer/cmd/categories"
	"fjacquet/expense-categorizer/cmd/categorize"
	"fjacquet/expense-categorizer/cmd/correct"
	"fjacquet/expense-categorizer/cmd/corrections"
	"fjacquet/expense-categorizer/cmd/info"
	"fjacquet/expense-categorizer/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(correct.Cmd)
	root.Cmd.AddCommand(corrections.Cmd)
	root.Cmd.AddCommand(info.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
