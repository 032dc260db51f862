package models

import "strings"

// FileType is the declared statement file format.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeCSV FileType = "csv"
)

// Document is an uploaded statement handed to the parser dispatcher.
// It is consumed once; the raw bytes may additionally be archived by the
// store for later re-import.
type Document struct {
	Name     string
	Data     []byte
	FileType FileType

	// Extracted content, populated by the dispatcher before parsers run
	// so that every strategy in the fallback chain reuses one extraction.
	Pages  []Page
	Lines  []string

	// Import hints from the upload boundary.
	DefaultCard string
	DefaultWho  string
}

// Page is the extractor's view of one statement page: raw text plus any
// tables recovered from positional layout.
type Page struct {
	Text   string
	Tables []Table
}

// Table is a detected table as rows of cell strings.
type Table [][]string

// FileTypeFromName derives the file type from a file name extension.
func FileTypeFromName(name string) (FileType, bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", false
	}
	switch strings.ToLower(name[idx+1:]) {
	case "pdf":
		return FileTypePDF, true
	case "csv":
		return FileTypeCSV, true
	}
	return "", false
}

// Text joins all page text, used by detection heuristics that score the
// whole document.
func (d *Document) Text() string {
	if len(d.Pages) == 0 {
		return string(d.Data)
	}
	var sb strings.Builder
	for i, p := range d.Pages {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
