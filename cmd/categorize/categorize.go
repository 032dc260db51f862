// Package categorize handles transaction categorization commands
package categorize

import (
	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
)

var description string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Resolve the category and need classification for a transaction
description using the override, merchant rule and embedding chain.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	category := app.Engine.GuessCategory(cmd.Context(), description)
	needCategory := app.Engine.GuessNeedCategory(description, category)

	root.Log.Infof("Category: %s", category)
	root.Log.Infof("Need category: %s", needCategory)
}
