// Package importcmd handles statement import commands
package importcmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
)

var (
	bank           string
	card           string
	who            string
	allowDuplicate bool
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <statement>...",
	Short: "Import bank statements",
	Long: `Import one or more PDF or CSV bank statements. Each file is parsed,
its transactions categorized and the original archived for re-import.`,
	Args: cobra.MinimumNArgs(1),
	Run:  importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&bank, "bank", "b", "", "Bank type (chase, discover, amex, venturex, indian, generic; auto-detected when omitted)")
	Cmd.Flags().StringVarP(&card, "card", "c", "", "Default card name for rows without one")
	Cmd.Flags().StringVarP(&who, "who", "w", "", "Default spender for rows without one")
	Cmd.Flags().BoolVar(&allowDuplicate, "allow-duplicate", false, "Import even when a statement with the same filename exists")
}

func importFunc(cmd *cobra.Command, args []string) {
	app, err := root.OpenApp(cmd.Context())
	if err != nil {
		root.Exit(err)
	}
	defer app.Close()

	if card != "" {
		app.Importer.DefaultCard = card
	}
	if who != "" {
		app.Importer.DefaultWho = who
	}
	if allowDuplicate {
		app.Importer.AllowDuplicate = true
	}

	// Pick up user overrides shipped as YAML before categorizing.
	if _, err := app.Store.ImportOverridesFile(root.Cfg.Import.OverridesFile); err != nil {
		root.Log.Warnf("Failed to import overrides file: %v", err)
	}

	failures := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			root.Log.Errorf("Failed to read %s: %v", path, err)
			failures++
			continue
		}

		summary, err := app.Importer.Import(cmd.Context(), filepath.Base(path), data, bank)
		if err != nil {
			root.Log.Errorf("Failed to import %s: %v", path, err)
			failures++
			continue
		}

		root.Log.Infof("Imported %d transactions from %s (strategy: %s, batch: %s)",
			summary.Imported, path, summary.Strategy, summary.BatchID)
	}

	if failures > 0 {
		root.Log.Errorf("%d of %d statements failed to import", failures, len(args))
		os.Exit(1)
	}
}
