// Package pdfextract recovers per-page text and naive tables from PDF
// statements. The Extractor interface allows parsers to be tested with
// canned page content instead of real PDF files.
package pdfextract

import (
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

// Extractor turns raw PDF bytes into per-page text and detected tables.
type Extractor interface {
	Extract(data []byte) ([]models.Page, error)
}

// MockExtractor returns predefined pages for testing.
type MockExtractor struct {
	Pages []models.Page
	Err   error
}

// NewMockExtractor builds a MockExtractor from raw page texts.
func NewMockExtractor(pageTexts ...string) *MockExtractor {
	pages := make([]models.Page, 0, len(pageTexts))
	for _, t := range pageTexts {
		pages = append(pages, models.Page{Text: t})
	}
	return &MockExtractor{Pages: pages}
}

// Extract returns the predefined pages or error.
func (m *MockExtractor) Extract(_ []byte) ([]models.Page, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pages, nil
}
