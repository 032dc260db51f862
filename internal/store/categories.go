package store

import (
	"fmt"
	"strings"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

// ListCategoryLabels returns every category label, defaults first.
func (s *Store) ListCategoryLabels() ([]models.CategoryLabel, error) {
	rows, err := s.db.Query(
		`SELECT name, icon, color, is_default FROM category_labels ORDER BY is_default DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("query category labels: %w", err)
	}
	defer rows.Close()

	var labels []models.CategoryLabel
	for rows.Next() {
		var l models.CategoryLabel
		var isDefault int
		if err := rows.Scan(&l.Name, &l.Icon, &l.Color, &isDefault); err != nil {
			return nil, fmt.Errorf("scan category label: %w", err)
		}
		l.IsDefault = isDefault != 0
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// AddCategoryLabel creates a custom label. Names are lowercased unique
// keys; colliding with any existing label is an error.
func (s *Store) AddCategoryLabel(label models.CategoryLabel) error {
	name := strings.ToLower(strings.TrimSpace(label.Name))
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO category_labels (name, icon, color, is_default) VALUES (?, ?, ?, 0)`,
		name, label.Icon, label.Color)
	if err != nil {
		return fmt.Errorf("insert category label: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check label insert: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %q already exists", name)
	}

	s.notifyCategoriesChanged()
	return nil
}

// UpdateCategoryLabel changes the icon and color of a custom label.
// Default labels are fixed identity keys and cannot be modified.
func (s *Store) UpdateCategoryLabel(label models.CategoryLabel) error {
	name := strings.ToLower(strings.TrimSpace(label.Name))

	result, err := s.db.Exec(
		`UPDATE category_labels SET icon = ?, color = ? WHERE name = ? AND is_default = 0`,
		label.Icon, label.Color, name)
	if err != nil {
		return fmt.Errorf("update category label: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check label update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %q does not exist or is a default", name)
	}
	return nil
}

// DeleteCategoryLabel removes a custom label along with its examples
// and merchant rules. Default labels cannot be deleted.
func (s *Store) DeleteCategoryLabel(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))

	result, err := s.db.Exec(
		`DELETE FROM category_labels WHERE name = ? AND is_default = 0`, name)
	if err != nil {
		return fmt.Errorf("delete category label: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check label delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %q does not exist or is a default", name)
	}

	if _, err := s.db.Exec(`DELETE FROM category_examples WHERE category = ?`, name); err != nil {
		return fmt.Errorf("delete category examples: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM merchant_rules WHERE category = ?`, name); err != nil {
		return fmt.Errorf("delete merchant rules: %w", err)
	}

	s.notifyCategoriesChanged()
	return nil
}

// CategoryExamples returns the example phrases per category used to
// build embedding centroids.
func (s *Store) CategoryExamples() (map[string][]string, error) {
	rows, err := s.db.Query(`SELECT category, phrase FROM category_examples ORDER BY category, phrase`)
	if err != nil {
		return nil, fmt.Errorf("query category examples: %w", err)
	}
	defer rows.Close()

	examples := make(map[string][]string)
	for rows.Next() {
		var category, phrase string
		if err := rows.Scan(&category, &phrase); err != nil {
			return nil, fmt.Errorf("scan category example: %w", err)
		}
		examples[category] = append(examples[category], phrase)
	}
	return examples, rows.Err()
}

// AddCategoryExample attaches an example phrase to a category.
func (s *Store) AddCategoryExample(category, phrase string) error {
	category = strings.ToLower(strings.TrimSpace(category))
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if category == "" || phrase == "" {
		return fmt.Errorf("category and phrase are required")
	}

	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO category_examples (category, phrase) VALUES (?, ?)`,
		category, phrase)
	if err != nil {
		return fmt.Errorf("insert category example: %w", err)
	}

	s.notifyCategoriesChanged()
	return nil
}

// MerchantRules returns the merchant substring to category mappings.
func (s *Store) MerchantRules() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT merchant, category FROM merchant_rules`)
	if err != nil {
		return nil, fmt.Errorf("query merchant rules: %w", err)
	}
	defer rows.Close()

	rules := make(map[string]string)
	for rows.Next() {
		var merchant, category string
		if err := rows.Scan(&merchant, &category); err != nil {
			return nil, fmt.Errorf("scan merchant rule: %w", err)
		}
		rules[merchant] = category
	}
	return rules, rows.Err()
}

// SetMerchantRule upserts a merchant substring to category rule.
func (s *Store) SetMerchantRule(merchant, category string) error {
	merchant = strings.ToLower(strings.TrimSpace(merchant))
	category = strings.ToLower(strings.TrimSpace(category))
	if merchant == "" || category == "" {
		return fmt.Errorf("merchant and category are required")
	}

	_, err := s.db.Exec(`
		INSERT INTO merchant_rules (merchant, category) VALUES (?, ?)
		ON CONFLICT(merchant) DO UPDATE SET category = excluded.category
	`, merchant, category)
	if err != nil {
		return fmt.Errorf("upsert merchant rule: %w", err)
	}
	return nil
}

// DeleteMerchantRule removes the rule for a merchant substring.
func (s *Store) DeleteMerchantRule(merchant string) error {
	_, err := s.db.Exec(
		`DELETE FROM merchant_rules WHERE merchant = ?`,
		strings.ToLower(strings.TrimSpace(merchant)))
	if err != nil {
		return fmt.Errorf("delete merchant rule: %w", err)
	}
	return nil
}
