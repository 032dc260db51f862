package store

import (
	"database/sql"
	"fmt"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// GetOverride returns the override stored for a normalized description,
// or nil when none exists.
func (s *Store) GetOverride(description string) (*models.Override, error) {
	var o models.Override
	err := s.db.QueryRow(
		`SELECT description, category, need_category FROM user_overrides WHERE description = ?`,
		textutils.NormalizeDescription(description),
	).Scan(&o.Description, &o.Category, &o.NeedCategory)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query override: %w", err)
	}
	return &o, nil
}

// SetOverride upserts an override. Empty fields keep whatever was
// stored before, so a need-only correction does not wipe an earlier
// category correction.
func (s *Store) SetOverride(o models.Override) error {
	o.Description = textutils.NormalizeDescription(o.Description)
	if o.Description == "" {
		return fmt.Errorf("override needs a description")
	}

	_, err := s.db.Exec(`
		INSERT INTO user_overrides (description, category, need_category)
		VALUES (?, ?, ?)
		ON CONFLICT(description) DO UPDATE SET
			category = CASE WHEN excluded.category != '' THEN excluded.category ELSE user_overrides.category END,
			need_category = CASE WHEN excluded.need_category != '' THEN excluded.need_category ELSE user_overrides.need_category END
	`, o.Description, o.Category, o.NeedCategory)
	if err != nil {
		return fmt.Errorf("upsert override: %w", err)
	}
	return nil
}

// ListOverrides returns every stored override ordered by description.
func (s *Store) ListOverrides() ([]models.Override, error) {
	rows, err := s.db.Query(
		`SELECT description, category, need_category FROM user_overrides ORDER BY description`)
	if err != nil {
		return nil, fmt.Errorf("query overrides: %w", err)
	}
	defer rows.Close()

	var overrides []models.Override
	for rows.Next() {
		var o models.Override
		if err := rows.Scan(&o.Description, &o.Category, &o.NeedCategory); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

// DeleteOverride removes the override for a normalized description.
func (s *Store) DeleteOverride(description string) error {
	_, err := s.db.Exec(
		`DELETE FROM user_overrides WHERE description = ?`,
		textutils.NormalizeDescription(description))
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	return nil
}

// ApplyLearnedCategory records a user edit as an override and
// propagates the new values to every stored transaction sharing the
// same normalized description. Returns the number of rows updated.
func (s *Store) ApplyLearnedCategory(description, category, needCategory string) (int, error) {
	normalized := textutils.NormalizeDescription(description)
	err := s.SetOverride(models.Override{
		Description:  normalized,
		Category:     category,
		NeedCategory: needCategory,
	})
	if err != nil {
		return 0, err
	}

	query := `UPDATE transactions SET category = ? WHERE lower(trim(description)) = ?`
	args := []interface{}{category, normalized}
	if needCategory != "" {
		query = `UPDATE transactions SET category = ?, need_category = ? WHERE lower(trim(description)) = ?`
		args = []interface{}{category, needCategory, normalized}
	}

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("propagate learned category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count propagated rows: %w", err)
	}

	log.Debugf("Learned category %q for %q, propagated to %d rows", category, normalized, affected)
	return int(affected), nil
}
