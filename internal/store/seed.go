package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// defaultCategoryExamples are the phrases each default category's
// embedding centroid is built from. They are inserted once; user edits
// survive because seeding never overwrites existing rows.
var defaultCategoryExamples = map[string][]string{
	"food": {
		"restaurant", "coffee shop", "dining", "takeout", "pizza",
		"bakery", "lunch", "dinner", "starbucks", "chipotle", "bent spoon",
	},
	"groceries": {
		"grocery", "supermarket", "aldi", "whole foods", "trader joe",
		"wegmans", "shoprite", "stop & shop",
	},
	"entertainment": {
		"movie ticket", "concert", "theater", "museum", "netflix",
		"amusement park", "bowling", "event", "show", "cinema",
	},
	"travel": {
		"flight ticket", "airfare", "uber ride", "taxi", "hotel",
		"train fare", "public transit", "metro card", "bus fare",
		"airport shuttle",
	},
	"utilities": {
		"electric bill", "water bill", "internet", "phone bill",
		"gas bill", "utility payment", "cable", "mobile recharge",
	},
	"shopping": {
		"clothing", "electronics", "amazon", "mall", "department store",
		"shoes", "online shopping", "retail", "purchase", "store",
		"jcpenny", "macys", "forever21", "shoe dept",
	},
	"gifts": {
		"gift", "present", "birthday gift", "wedding gift",
		"anniversary gift", "donation", "flowers", "greeting card",
	},
	"medicines": {
		"pharmacy", "medicine", "drugstore", "prescription", "doctor",
		"hospital", "clinic", "medical bill",
	},
	"charity": {
		"charity", "donation", "ngo", "fundraiser", "church", "temple",
		"zakat", "tithe", "red cross",
	},
	"school": {
		"school fee", "tuition", "books", "stationery", "college",
		"university", "course", "exam fee", "education",
	},
}

// defaultMerchantRules seed the deterministic merchant matching layer.
var defaultMerchantRules = map[string]string{
	"aldi":        "groceries",
	"whole foods": "groceries",
	"trader joe":  "groceries",
	"wegmans":     "groceries",
	"shoprite":    "groceries",
	"stop & shop": "groceries",
	"jcpenny":     "shopping",
	"macys":       "shopping",
	"forever21":   "shopping",
	"shoe dept":   "shopping",
	"bent spoon":  "food",
	"starbucks":   "food",
	"chipotle":    "food",
	"junbi":       "food",
	"red cross":   "charity",
}

// seed inserts the default labels, examples and merchant rules without
// touching rows that already exist.
func (s *Store) seed() error {
	for _, name := range models.DefaultCategoryNames {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO category_labels (name, icon, color, is_default) VALUES (?, '', '#818cf8', 1)`,
			name)
		if err != nil {
			return fmt.Errorf("seed label %q: %w", name, err)
		}
	}
	for category, phrases := range defaultCategoryExamples {
		for _, phrase := range phrases {
			_, err := s.db.Exec(
				`INSERT OR IGNORE INTO category_examples (category, phrase) VALUES (?, ?)`,
				category, phrase)
			if err != nil {
				return fmt.Errorf("seed example %q/%q: %w", category, phrase, err)
			}
		}
	}
	for merchant, category := range defaultMerchantRules {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO merchant_rules (merchant, category) VALUES (?, ?)`,
			merchant, category)
		if err != nil {
			return fmt.Errorf("seed merchant rule %q: %w", merchant, err)
		}
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "mimis-expense-tracker", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// ImportOverridesFile loads description to category overrides from a
// YAML file and merges them into the override table. Missing files are
// not an error; a fresh installation has nothing to import.
func (s *Store) ImportOverridesFile(filename string) (int, error) {
	if filename == "" {
		filename = "overrides.yaml"
	}

	filePath, err := FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Overrides file not found: %s", filename)
			return 0, nil
		}
		return 0, fmt.Errorf("resolve overrides file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read overrides file: %w", err)
	}

	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return 0, fmt.Errorf("parse overrides file: %w", err)
	}

	imported := 0
	for description, category := range mappings {
		err := s.SetOverride(models.Override{
			Description: textutils.NormalizeDescription(description),
			Category:    category,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}

	log.Debugf("Imported %d overrides from %s", imported, filePath)
	return imported, nil
}
