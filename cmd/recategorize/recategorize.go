// Package recategorize handles the bulk recategorization command
package recategorize

import (
	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
)

// Cmd represents the recategorize command
var Cmd = &cobra.Command{
	Use:   "recategorize",
	Short: "Re-resolve categories for uncategorized transactions",
	Long: `Run the categorization chain again over every stored transaction
whose category is still a placeholder. Overridden rows and rows with a
user-chosen category are left untouched.`,
	Run: recategorizeFunc,
}

func recategorizeFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	updated, err := app.Engine.RecategorizeAll(cmd.Context(), app.Store)
	if err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Recategorized %d transactions", updated)
}
