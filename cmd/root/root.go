// Package root contains the root command for the application
package root

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/amexparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/categorizer"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/chaseparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/common"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/config"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/discoverparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/dispatcher"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/genericparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/importer"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/indianbankparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/logging"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/pdfextract"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/store"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/venturexparser"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "mimis",
		Short: "A CLI tool to import bank statements and categorize household expenses.",
		Long: `mimis imports PDF and CSV bank statements, normalizes their
transactions and categorizes spending using overrides, merchant rules
and embedding similarity.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Set the configured logger everywhere
			common.SetLogger(Log)
			store.SetLogger(Log)
			importer.SetLogger(Log)
			dispatcher.SetLogger(Log)
			pdfextract.SetLogger(Log)
			chaseparser.SetLogger(Log)
			discoverparser.SetLogger(Log)
			amexparser.SetLogger(Log)
			venturexparser.SetLogger(Log)
			indianbankparser.SetLogger(Log)
			genericparser.SetLogger(Log)
		},
	}
)

// App bundles the wired collaborators the commands operate on.
type App struct {
	Store    *store.Store
	Engine   *categorizer.Engine
	Importer *importer.Importer

	embedder *categorizer.GeminiEmbedder
}

// OpenApp opens the database and wires the categorization engine and
// importer from the loaded configuration. The embedding strategy is
// only attached when AI categorization is enabled.
func OpenApp(ctx context.Context) (*App, error) {
	s, err := store.Open(Cfg.DatabasePath())
	if err != nil {
		return nil, err
	}

	var embedder *categorizer.GeminiEmbedder
	var emb categorizer.Embedder
	if Cfg.AI.Enabled {
		embedder, err = categorizer.NewGeminiEmbedder(ctx, Cfg.AI.APIKey, Cfg.AI.EmbeddingModel,
			logging.NewLogrusAdapterFromLogger(Log))
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		emb = embedder
	}

	engine := categorizer.NewEngine(s, emb, logging.NewLogrusAdapterFromLogger(Log))
	s.OnCategoriesChanged = engine.InvalidateCache

	imp := importer.New(s, dispatcher.New(nil), engine)
	imp.DefaultCard = Cfg.Import.DefaultCard
	imp.DefaultWho = Cfg.Import.DefaultWho
	imp.AllowDuplicate = Cfg.Import.AllowDuplicate

	return &App{Store: s, Engine: engine, Importer: imp, embedder: embedder}, nil
}

// Close releases the database and embedding client.
func (a *App) Close() {
	if a.embedder != nil {
		if err := a.embedder.Close(); err != nil {
			Log.Warnf("Failed to close embedding client: %v", err)
		}
	}
	if err := a.Store.Close(); err != nil {
		Log.Warnf("Failed to close store: %v", err)
	}
}

// Exit logs the error and terminates with a nonzero status.
func Exit(err error) {
	Log.Error(err)
	os.Exit(1)
}
