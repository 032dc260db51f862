// Package rules manages category overrides and merchant rules
package rules

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

var needCategory string

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage category overrides and merchant rules",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored overrides and merchant rules",
	Run:   listFunc,
}

var setCmd = &cobra.Command{
	Use:   "set <description> <category>",
	Short: "Set a category override for a description",
	Long: `Store a category override. The override wins over every other
categorization signal and is propagated to stored transactions with the
same description.`,
	Args: cobra.ExactArgs(2),
	Run:  setFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <description>",
	Short: "Delete the override for a description",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

var merchantCmd = &cobra.Command{
	Use:   "merchant <merchant> <category>",
	Short: "Set a merchant substring rule",
	Args:  cobra.ExactArgs(2),
	Run:   merchantFunc,
}

func init() {
	setCmd.Flags().StringVarP(&needCategory, "need", "n", "", "Need classification override (Need, Luxury or Income)")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(merchantCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	overrides, err := app.Store.ListOverrides()
	if err != nil {
		root.Exit(err)
	}
	for _, o := range overrides {
		root.Log.Infof("override: %q -> %s %s", o.Description, o.Category, o.NeedCategory)
	}

	rules, err := app.Store.MerchantRules()
	if err != nil {
		root.Exit(err)
	}
	for merchant, category := range rules {
		root.Log.Infof("merchant: %q -> %s", merchant, category)
	}
}

func setFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	updated, err := app.Store.ApplyLearnedCategory(args[0], strings.ToLower(args[1]), needCategory)
	if err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Override stored, %d existing transactions updated", updated)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	if err := app.Store.DeleteOverride(args[0]); err != nil {
		root.Exit(err)
	}
	root.Log.Info("Override deleted")
}

func merchantFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	category := strings.ToLower(args[1])
	labels, err := app.Store.ListCategoryLabels()
	if err != nil {
		root.Exit(err)
	}
	if !hasLabel(labels, category) {
		root.Log.Warnf("Category %q has no label yet", category)
	}

	if err := app.Store.SetMerchantRule(args[0], category); err != nil {
		root.Exit(err)
	}
	root.Log.Info("Merchant rule stored")
}

func hasLabel(labels []models.CategoryLabel, name string) bool {
	for _, l := range labels {
		if l.Name == name {
			return true
		}
	}
	return false
}
