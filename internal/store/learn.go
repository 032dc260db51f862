package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// RenameCategoryLabel renames a custom label and carries the name change
// through its examples, merchant rules, overrides and stored
// transactions. Default labels are fixed identity keys and cannot be
// renamed.
func (s *Store) RenameCategoryLabel(oldName, newName string) error {
	oldName = strings.ToLower(strings.TrimSpace(oldName))
	newName = strings.ToLower(strings.TrimSpace(newName))
	if oldName == "" || newName == "" {
		return fmt.Errorf("old and new category names are required")
	}
	if oldName == newName {
		return nil
	}

	result, err := s.db.Exec(
		`UPDATE category_labels SET name = ? WHERE name = ? AND is_default = 0`,
		newName, oldName)
	if err != nil {
		return fmt.Errorf("rename category label: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check label rename: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %q does not exist or is a default", oldName)
	}

	cascades := []string{
		`UPDATE category_examples SET category = ? WHERE category = ?`,
		`UPDATE merchant_rules SET category = ? WHERE category = ?`,
		`UPDATE user_overrides SET category = ? WHERE category = ?`,
		`UPDATE transactions SET category = ? WHERE category = ?`,
	}
	for _, q := range cascades {
		if _, err := s.db.Exec(q, newName, oldName); err != nil {
			return fmt.Errorf("cascade category rename: %w", err)
		}
	}

	s.notifyCategoriesChanged()
	return nil
}

// LearnTransactionCategory applies a user's edit of one transaction's
// category: the edit is recorded as an override for the row's
// description and propagated to every row sharing it, the edited row
// included. Returns the number of rows updated.
func (s *Store) LearnTransactionCategory(id int64, category, needCategory string) (int, error) {
	var description string
	err := s.db.QueryRow(
		`SELECT description FROM transactions WHERE id = ?`, id,
	).Scan(&description)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("transaction %d not found", id)
	}
	if err != nil {
		return 0, fmt.Errorf("query transaction: %w", err)
	}

	return s.ApplyLearnedCategory(description, category, needCategory)
}
