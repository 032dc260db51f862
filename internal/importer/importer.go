// Package importer runs the full statement import flow: parse the
// uploaded file through the dispatcher, categorize the accepted rows,
// archive the original bytes and persist everything as one batch.
package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/categorizer"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/dispatcher"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parsererror"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/store"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Importer wires the parsing, categorization and persistence stages.
type Importer struct {
	store      *store.Store
	dispatcher *dispatcher.Dispatcher
	engine     *categorizer.Engine

	DefaultCard    string
	DefaultWho     string
	AllowDuplicate bool
}

// New creates an Importer over the given collaborators.
func New(s *store.Store, d *dispatcher.Dispatcher, e *categorizer.Engine) *Importer {
	return &Importer{store: s, dispatcher: d, engine: e}
}

// Summary reports what an import produced.
type Summary struct {
	Imported    int
	Strategy    string
	BatchID     string
	StatementID int64
}

// Import parses and persists one uploaded statement. The original file
// bytes are archived even when no rows come out, so a failed layout can
// be replayed once a better parser exists.
func (i *Importer) Import(ctx context.Context, filename string, data []byte, declaredBank string) (Summary, error) {
	if !i.AllowDuplicate {
		exists, err := i.store.HasStatement(filename)
		if err != nil {
			return Summary{}, err
		}
		if exists {
			return Summary{}, fmt.Errorf("statement %q was already imported", filename)
		}
	}

	fileType, ok := models.FileTypeFromName(filename)
	if !ok {
		return Summary{}, &parsererror.InvalidFormatError{
			FileName:       filename,
			ExpectedFormat: "pdf or csv",
			Msg:            "unsupported file extension",
		}
	}

	doc := &models.Document{
		Name:        filename,
		Data:        data,
		FileType:    fileType,
		DefaultCard: i.DefaultCard,
		DefaultWho:  i.DefaultWho,
	}

	result, err := i.dispatcher.Dispatch(doc, declaredBank)
	if err != nil {
		return Summary{}, fmt.Errorf("parse statement: %w", err)
	}

	for idx := range result.Rows {
		i.engine.Categorize(ctx, &result.Rows[idx])
	}

	statementID, err := i.store.SaveStatement(filename, string(doc.FileType), result.Strategy, data)
	if err != nil {
		return Summary{}, fmt.Errorf("archive statement: %w", err)
	}

	batchID := uuid.NewString()
	if err := i.store.InsertTransactions(result.Rows, batchID, statementID); err != nil {
		return Summary{}, fmt.Errorf("persist transactions: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":     filename,
		"imported": len(result.Rows),
		"strategy": result.Strategy,
		"batch":    batchID,
	}).Info("Statement imported")

	return Summary{
		Imported:    len(result.Rows),
		Strategy:    result.Strategy,
		BatchID:     batchID,
		StatementID: statementID,
	}, nil
}

// Reimport replays an archived statement through the current parser and
// categorization stack. The archive row is kept; a fresh batch of
// transactions is written next to the old one.
func (i *Importer) Reimport(ctx context.Context, statementID int64) (Summary, error) {
	rec, err := i.store.StatementFile(statementID)
	if err != nil {
		return Summary{}, err
	}

	doc := &models.Document{
		Name:        rec.Filename,
		Data:        rec.File,
		FileType:    models.FileType(rec.FileType),
		DefaultCard: i.DefaultCard,
		DefaultWho:  i.DefaultWho,
	}

	// Seed the replay with the strategy that won the original import;
	// the dispatcher still falls back if the layout no longer matches.
	result, err := i.dispatcher.Dispatch(doc, rec.Strategy)
	if err != nil {
		return Summary{}, fmt.Errorf("reparse statement: %w", err)
	}

	for idx := range result.Rows {
		i.engine.Categorize(ctx, &result.Rows[idx])
	}

	batchID := uuid.NewString()
	if err := i.store.InsertTransactions(result.Rows, batchID, rec.ID); err != nil {
		return Summary{}, fmt.Errorf("persist transactions: %w", err)
	}

	log.WithFields(logrus.Fields{
		"statement": rec.Filename,
		"imported":  len(result.Rows),
		"strategy":  result.Strategy,
	}).Info("Statement re-imported")

	return Summary{
		Imported:    len(result.Rows),
		Strategy:    result.Strategy,
		BatchID:     batchID,
		StatementID: rec.ID,
	}, nil
}
