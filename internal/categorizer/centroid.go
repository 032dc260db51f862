package categorizer

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/logging"
)

// CentroidCache holds one averaged embedding vector per category,
// computed from that category's example phrases. It is built lazily on
// first use and rebuilt after Invalidate, so edits to categories or
// examples take effect on the next lookup.
type CentroidCache struct {
	mu        sync.Mutex
	embedder  Embedder
	store     CategoryStore
	logger    logging.Logger
	centroids map[string][]float32
}

// NewCentroidCache creates an empty cache over the given collaborators.
func NewCentroidCache(embedder Embedder, store CategoryStore, logger logging.Logger) *CentroidCache {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CentroidCache{embedder: embedder, store: store, logger: logger}
}

// Invalidate drops the cached centroids. The next lookup rebuilds them.
func (c *CentroidCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.centroids = nil
}

// BestMatch embeds the description and returns the category whose
// centroid is closest by cosine similarity. ok is false when the cache
// is empty after a build attempt.
func (c *CentroidCache) BestMatch(ctx context.Context, description string) (string, float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.centroids == nil {
		if err := c.build(ctx); err != nil {
			return "", 0, false, err
		}
	}
	if len(c.centroids) == 0 {
		return "", 0, false, nil
	}

	vec, err := c.embedder.Embed(ctx, description)
	if err != nil {
		return "", 0, false, fmt.Errorf("embed description: %w", err)
	}

	var best string
	bestScore := math.Inf(-1)
	for category, centroid := range c.centroids {
		score := cosine(vec, centroid)
		if score > bestScore {
			best, bestScore = category, score
		}
	}
	return best, bestScore, true, nil
}

// build embeds every category's examples and averages them. Categories
// without examples get no centroid and never win a match.
func (c *CentroidCache) build(ctx context.Context) error {
	examples, err := c.store.CategoryExamples()
	if err != nil {
		return fmt.Errorf("load category examples: %w", err)
	}

	centroids := make(map[string][]float32, len(examples))
	for category, phrases := range examples {
		if len(phrases) == 0 {
			continue
		}
		vectors, err := c.embedder.EmbedBatch(ctx, phrases)
		if err != nil {
			return fmt.Errorf("embed examples for %q: %w", category, err)
		}
		centroid := average(vectors)
		if centroid == nil {
			continue
		}
		centroids[category] = centroid
	}

	c.centroids = centroids
	c.logger.Debug("Built category centroids",
		logging.Field{Key: "categories", Value: len(centroids)})
	return nil
}

func average(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}
	dim := len(vectors[0])
	sum := make([]float64, dim)
	for _, v := range vectors {
		if len(v) != dim {
			continue
		}
		for i, x := range v {
			sum[i] += float64(x)
		}
	}
	out := make([]float32, dim)
	n := float64(len(vectors))
	for i, s := range sum {
		out[i] = float32(s / n)
	}
	return out
}

// cosine returns the cosine similarity of two vectors, 0 when either
// has zero magnitude or the dimensions disagree.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
