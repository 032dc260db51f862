package dispatcher

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parsererror"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/pdfextract"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Dispatcher routes documents to parsing strategies.
type Dispatcher struct {
	extractor pdfextract.Extractor
}

// New creates a Dispatcher. A nil extractor falls back to the production
// PDF extractor.
func New(extractor pdfextract.Extractor) *Dispatcher {
	if extractor == nil {
		extractor = pdfextract.NewPDFExtractor()
	}
	return &Dispatcher{extractor: extractor}
}

// Result is what the upload boundary receives: the accepted rows and
// the name of the strategy that produced them, for diagnosability.
type Result struct {
	Rows     []models.Transaction
	Strategy string
}

// Dispatch parses a statement document.
//
// Resolution order: the declared bank type's parser (auto-detection when
// nothing is declared), then the generic parser as universal fallback,
// then a regional retry when a generic result coincides with enough
// independent Indian-statement indicators. An empty result after every
// strategy is a valid outcome, not an error.
func (d *Dispatcher) Dispatch(doc *models.Document, declaredBank string) (Result, error) {
	if err := d.prepare(doc); err != nil {
		return Result{}, err
	}

	bank, declared := parser.ParseBankType(declaredBank)
	if !declared {
		bank = DetectBankType(detectionText(doc))
		log.WithFields(logrus.Fields{
			"detected": bank.String(),
			"file":     doc.Name,
		}).Debug("Auto-detected bank type")
	}

	chain := []parser.StatementParser{NewParser(bank)}
	if bank != parser.BankGeneric {
		chain = append(chain, NewParser(parser.BankGeneric))
	}

	outcome := parser.RunChain(chain, doc)
	if outcome.Status == parser.StatusFailed {
		log.WithError(outcome.Err).WithField("strategy", outcome.Strategy).
			Warn("Parser strategy failed, continuing with fallback policy")
	}

	// Regional retry: a generic document carrying enough independent
	// Indian indicators is re-parsed with the regional strategy before
	// giving up on it.
	if shouldRetryIndian(bank, outcome, doc) {
		retry := parser.Run(NewParser(parser.BankIndian), doc)
		if retry.Status == parser.StatusParsed {
			outcome = retry
		}
	}

	if outcome.Status != parser.StatusParsed {
		log.WithField("file", doc.Name).Info("No strategy produced rows, returning empty result")
		return Result{Strategy: outcome.Strategy}, nil
	}

	log.WithFields(logrus.Fields{
		"strategy": outcome.Strategy,
		"count":    len(outcome.Rows),
	}).Info("Statement parsed")
	return Result{Rows: outcome.Rows, Strategy: outcome.Strategy}, nil
}

// prepare extracts page text for PDFs and splits lines once so that
// every strategy in the chain reuses the same extraction.
func (d *Dispatcher) prepare(doc *models.Document) error {
	if doc.FileType == models.FileTypePDF && len(doc.Pages) == 0 {
		pages, err := d.extractor.Extract(doc.Data)
		if err != nil {
			return &parsererror.DataExtractionError{
				FileName: doc.Name,
				Field:    "pages",
				Reason:   err.Error(),
			}
		}
		doc.Pages = pages
	}
	if len(doc.Lines) == 0 {
		doc.Lines = textutils.SplitLines(doc.Text())
	}
	return nil
}

// detectionText bounds auto-detection to the first few pages.
func detectionText(doc *models.Document) string {
	if len(doc.Pages) == 0 {
		return doc.Text()
	}
	limit := detectPages
	if len(doc.Pages) < limit {
		limit = len(doc.Pages)
	}
	var sb strings.Builder
	for i := 0; i < limit; i++ {
		sb.WriteString(doc.Pages[i].Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func shouldRetryIndian(bank parser.BankType, outcome parser.Outcome, doc *models.Document) bool {
	if bank == parser.BankIndian {
		return false
	}
	if outcome.Status == parser.StatusParsed && outcome.Strategy != "generic" {
		return false
	}
	return CountIndianIndicators(doc.Text()) >= minIndianIndicators
}
