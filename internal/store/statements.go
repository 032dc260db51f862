package store

import (
	"database/sql"
	"fmt"
	"time"
)

// StatementRecord is an archived statement upload. File is only
// populated when fetched through StatementFile.
type StatementRecord struct {
	ID         int64
	Filename   string
	FileType   string
	UploadDate string
	Strategy   string
	File       []byte
}

// HasStatement reports whether a statement with this filename was
// already archived. Imports use it to refuse accidental duplicates.
func (s *Store) HasStatement(filename string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM statements WHERE filename = ?`, filename,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check statement: %w", err)
	}
	return count > 0, nil
}

// SaveStatement archives the raw statement bytes so the import can be
// replayed later. Returns the new statement id.
func (s *Store) SaveStatement(filename, fileType, strategy string, data []byte) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO statements (filename, file_type, upload_date, strategy, file)
		VALUES (?, ?, ?, ?, ?)
	`, filename, fileType, time.Now().Format("2006-01-02"), strategy, data)
	if err != nil {
		return 0, fmt.Errorf("insert statement: %w", err)
	}
	return result.LastInsertId()
}

// ListStatements returns the archive newest first, without file bytes.
func (s *Store) ListStatements() ([]StatementRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, file_type, upload_date, strategy
		FROM statements
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query statements: %w", err)
	}
	defer rows.Close()

	var statements []StatementRecord
	for rows.Next() {
		var rec StatementRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.FileType, &rec.UploadDate, &rec.Strategy); err != nil {
			return nil, fmt.Errorf("scan statement: %w", err)
		}
		statements = append(statements, rec)
	}
	return statements, rows.Err()
}

// StatementFile fetches one archived statement with its file bytes.
func (s *Store) StatementFile(id int64) (*StatementRecord, error) {
	var rec StatementRecord
	err := s.db.QueryRow(`
		SELECT id, filename, file_type, upload_date, strategy, file
		FROM statements
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Filename, &rec.FileType, &rec.UploadDate, &rec.Strategy, &rec.File)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("statement %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query statement: %w", err)
	}
	return &rec, nil
}

// DeleteStatement removes an archived statement and its transactions.
func (s *Store) DeleteStatement(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM transactions WHERE statement_id = ?`, id); err != nil {
		return fmt.Errorf("delete statement transactions: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM statements WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete statement: %w", err)
	}
	return nil
}
