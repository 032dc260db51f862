package pdfextract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// cellGap is the horizontal gap (in PDF points) that separates two cells
// on the same text row. Smaller gaps are treated as word spacing.
const cellGap = 14.0

// PDFExtractor is the production Extractor backed by ledongthuc/pdf.
type PDFExtractor struct{}

// NewPDFExtractor creates the production PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract reads every page of the PDF, reconstructing line text from
// positional rows and grouping aligned multi-cell rows into tables.
// Extraction never panics past this boundary; a malformed page reduces
// yield instead of failing the document.
func (e *PDFExtractor) Extract(data []byte) (pages []models.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("recovered from PDF extraction panic: %v", r)
			err = fmt.Errorf("pdf extraction panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		extracted, pageErr := extractPage(page)
		if pageErr != nil {
			log.WithError(pageErr).Warnf("skipping page %d", i)
			continue
		}
		pages = append(pages, extracted)
	}
	return pages, nil
}

func extractPage(page pdf.Page) (models.Page, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return models.Page{}, fmt.Errorf("get text rows: %w", err)
	}

	var sb bytes.Buffer
	cellRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := rowCells(row)
		if len(cells) == 0 {
			continue
		}
		cellRows = append(cellRows, cells)
		for j, c := range cells {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(c)
		}
		sb.WriteByte('\n')
	}

	return models.Page{
		Text:   sb.String(),
		Tables: detectTables(cellRows),
	}, nil
}

// rowCells merges the row's positioned text fragments into cells: a
// fragment starts a new cell when the horizontal gap to the previous
// fragment exceeds cellGap.
func rowCells(row *pdf.Row) []string {
	var cells []string
	var current bytes.Buffer
	var prevEnd float64
	started := false

	for _, text := range row.Content {
		if started && text.X-prevEnd > cellGap {
			cells = appendCell(cells, &current)
		} else if started && text.X-prevEnd > 0.5 {
			current.WriteByte(' ')
		}
		current.WriteString(text.S)
		prevEnd = text.X + text.W
		started = true
	}
	cells = appendCell(cells, &current)
	return cells
}

func appendCell(cells []string, buf *bytes.Buffer) []string {
	cell := trimCell(buf.String())
	buf.Reset()
	if cell == "" {
		return cells
	}
	return append(cells, cell)
}

func trimCell(s string) string {
	return string(bytes.TrimSpace([]byte(s)))
}

// detectTables finds contiguous runs of rows with two or more cells and
// a stable column count. Single-cell rows break a run; runs shorter than
// two rows are discarded as layout noise.
func detectTables(rows [][]string) []models.Table {
	var tables []models.Table
	var current models.Table

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, current)
		}
		current = nil
	}

	for _, cells := range rows {
		if len(cells) < 2 {
			flush()
			continue
		}
		current = append(current, cells)
	}
	flush()
	return tables
}
