// Package statements manages the archived statement uploads
package statements

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/common"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

var exportFile string

// Cmd represents the statements command
var Cmd = &cobra.Command{
	Use:   "statements",
	Short: "Manage archived statements and exports",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived statements",
	Run:   listFunc,
}

var reimportCmd = &cobra.Command{
	Use:   "reimport <id>",
	Short: "Re-run an archived statement through the current parsers",
	Args:  cobra.ExactArgs(1),
	Run:   reimportFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an archived statement and its transactions",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored transactions to CSV",
	Run:   exportFunc,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "transactions.csv", "Output CSV file")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(reimportCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(exportCmd)
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		root.Exit(err)
	}
	return id
}

func listFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	records, err := app.Store.ListStatements()
	if err != nil {
		root.Exit(err)
	}
	for _, rec := range records {
		root.Log.Infof("%d  %s  %s  uploaded %s  strategy %s",
			rec.ID, rec.Filename, rec.FileType, rec.UploadDate, rec.Strategy)
	}
}

func reimportFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	summary, err := app.Importer.Reimport(cmd.Context(), parseID(args[0]))
	if err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Re-imported %d transactions (strategy: %s, batch: %s)",
		summary.Imported, summary.Strategy, summary.BatchID)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	if err := app.Store.DeleteStatement(parseID(args[0])); err != nil {
		root.Exit(err)
	}
	root.Log.Info("Statement deleted")
}

func exportFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	stored, err := app.Store.ListTransactions()
	if err != nil {
		root.Exit(err)
	}

	transactions := make([]models.Transaction, 0, len(stored))
	for _, s := range stored {
		transactions = append(transactions, s.Transaction)
	}

	if err := common.WriteTransactionsToCSV(transactions, exportFile); err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Exported %d transactions to %s", len(transactions), exportFile)
}
