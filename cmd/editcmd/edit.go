// Package editcmd corrects the category of a stored transaction
package editcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
)

var needCategory string

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit <transaction-id> <category>",
	Short: "Correct a transaction's category and learn from the edit",
	Long: `Set the category for one stored transaction. The correction is
recorded as an override for the transaction's description and applied to
every stored transaction sharing it, so future imports of the same
merchant resolve without guessing.`,
	Args: cobra.ExactArgs(2),
	Run:  editFunc,
}

func init() {
	Cmd.Flags().StringVarP(&needCategory, "need", "n", "", "Need classification (Need, Luxury or Income)")
}

func editFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		root.Exit(fmt.Errorf("invalid transaction id %q", args[0]))
	}

	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	updated, err := app.Store.LearnTransactionCategory(id, strings.ToLower(args[1]), needCategory)
	if err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Category learned, %d transactions updated", updated)
}
