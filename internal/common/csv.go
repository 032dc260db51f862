// Package common provides the shared CSV plumbing used by the
// fixed-layout bank CSV parsers and the export paths.
package common

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSV decodes CSV bytes into a slice of row structs using gocsv
// struct tags. TRow is the per-bank row type.
func ReadCSV[TRow any](data []byte) ([]TRow, error) {
	cleaned := []byte(textutils.StripBOM(string(data)))

	var rows []TRow
	if err := gocsv.UnmarshalBytes(cleaned, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV: %w", err)
	}
	return rows, nil
}

// WriteTransactionsToCSV writes normalized transactions to a CSV file,
// creating it if needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	var buf bytes.Buffer
	if err := gocsv.Marshal(&transactions, &buf); err != nil {
		return fmt.Errorf("error marshaling transactions: %w", err)
	}
	if err := os.WriteFile(csvFile, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Wrote transactions to CSV")
	return nil
}
