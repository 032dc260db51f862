// Package categories manages category labels and their example phrases
package categories

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

var (
	icon  string
	color string
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage category labels and example phrases",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List category labels",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom category label",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a custom category label",
	Long: `Rename a custom category label. The new name is carried through
example phrases, merchant rules, overrides and stored transactions.
Default labels cannot be renamed.`,
	Args: cobra.ExactArgs(2),
	Run:  renameFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a custom category label with its examples and rules",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

var exampleCmd = &cobra.Command{
	Use:   "example <category> <phrase>",
	Short: "Add an example phrase used to build the category's centroid",
	Args:  cobra.ExactArgs(2),
	Run:   exampleFunc,
}

func init() {
	addCmd.Flags().StringVarP(&icon, "icon", "i", "", "Icon for the label")
	addCmd.Flags().StringVarP(&color, "color", "c", "#818cf8", "Display color for the label")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(renameCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(exampleCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	labels, err := app.Store.ListCategoryLabels()
	if err != nil {
		root.Exit(err)
	}
	for _, l := range labels {
		kind := "custom"
		if l.IsDefault {
			kind = "default"
		}
		root.Log.Infof("%s (%s) %s %s", l.Name, kind, l.Icon, l.Color)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	label := models.CategoryLabel{Name: strings.ToLower(args[0]), Icon: icon, Color: color}
	if err := app.Store.AddCategoryLabel(label); err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Category %q added", label.Name)
}

func renameFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	if err := app.Store.RenameCategoryLabel(args[0], args[1]); err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Category %q renamed to %q", args[0], args[1])
}

func deleteFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	if err := app.Store.DeleteCategoryLabel(args[0]); err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Category %q deleted", args[0])
}

func exampleFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	if err := app.Store.AddCategoryExample(args[0], args[1]); err != nil {
		root.Exit(err)
	}
	root.Log.Infof("Example added to %q", strings.ToLower(args[0]))
}
