package categorizer

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/logging"
)

// Embedder is the embedding provider collaborator. The engine treats it
// as a black box: a fixed pretrained sentence-embedding model used for
// inference only.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// GeminiEmbedder implements Embedder against the Gemini embedding API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
	logger logging.Logger
}

// NewGeminiEmbedder creates an Embedder using the given API key and
// embedding model name.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string, logger logging.Logger) (*GeminiEmbedder, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiEmbedder{client: client, model: model, logger: logger}, nil
}

// Embed returns the embedding vector for one text.
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("embedding response carried no vector")
	}
	return res.Embedding.Values, nil
}

// EmbedBatch embeds each text in turn. Batching at the API level is not
// available on the pinned client version, so this stays sequential.
func (g *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for _, t := range texts {
		v, err := g.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Close releases the underlying API client.
func (g *GeminiEmbedder) Close() error {
	return g.client.Close()
}

// MockEmbedder is a deterministic Embedder for tests: each text hashes
// to a stable unit vector, and identical texts always embed identically.
type MockEmbedder struct {
	// Vectors overrides specific texts with fixed vectors.
	Vectors map[string][]float32
	Err     error
}

// Embed returns the configured or derived vector for the text.
func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if v, ok := m.Vectors[text]; ok {
		return v, nil
	}
	return hashVector(text), nil
}

// EmbedBatch embeds each text in turn.
func (m *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for _, t := range texts {
		v, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func hashVector(text string) []float32 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := h.Sum64()

	v := make([]float32, 8)
	var norm float64
	for i := range v {
		seed = seed*6364136223846793005 + 1442695040888963407
		v[i] = float32(int64(seed>>33)) / float32(math.MaxInt32)
		norm += float64(v[i]) * float64(v[i])
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
	return v
}
