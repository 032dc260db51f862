package categorizer

import (
	"context"
	"strings"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/logging"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// strategy is one step in the resolution chain. Guess returns ok=false
// when the strategy has no opinion, letting the chain continue.
type strategy interface {
	Name() string
	Guess(ctx context.Context, description string) (category string, ok bool, err error)
}

// overrideStrategy resolves from stored user corrections. An override
// with a category always wins over every other signal.
type overrideStrategy struct {
	store CategoryStore
}

func (s *overrideStrategy) Name() string { return "override" }

func (s *overrideStrategy) Guess(_ context.Context, description string) (string, bool, error) {
	override, err := s.store.GetOverride(textutils.NormalizeDescription(description))
	if err != nil {
		return "", false, err
	}
	if override == nil || override.Category == "" {
		return "", false, nil
	}
	return override.Category, true, nil
}

// merchantStrategy matches known merchant substrings against the
// normalized description. Rules are deterministic and cheap, so they
// run before the embedding lookup.
type merchantStrategy struct {
	store CategoryStore
}

func (s *merchantStrategy) Name() string { return "merchant" }

func (s *merchantStrategy) Guess(_ context.Context, description string) (string, bool, error) {
	rules, err := s.store.MerchantRules()
	if err != nil {
		return "", false, err
	}
	normalized := textutils.NormalizeMerchant(description)
	for merchant, category := range rules {
		if strings.Contains(normalized, textutils.NormalizeMerchant(merchant)) {
			return category, true, nil
		}
	}
	return "", false, nil
}

// embeddingStrategy resolves via nearest category centroid.
type embeddingStrategy struct {
	cache  *CentroidCache
	logger logging.Logger
}

func (s *embeddingStrategy) Name() string { return "embedding" }

func (s *embeddingStrategy) Guess(ctx context.Context, description string) (string, bool, error) {
	category, score, ok, err := s.cache.BestMatch(ctx, textutils.NormalizeDescription(description))
	if err != nil || !ok {
		return "", false, err
	}
	s.logger.Debug("Embedding match",
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "category", Value: category},
		logging.Field{Key: "score", Value: score})
	return category, true, nil
}
