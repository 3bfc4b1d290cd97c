// Package embed wraps text→vector embedding generation. The ranking core
// treats vectors as opaque; this package is the only place that knows which
// model produces them.
package embed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/anatolykoptev/go_match/internal/engine"
)

// ErrEmptyText is returned when there is nothing to embed. Callers must not
// substitute a guessed vector — a missing embedding is a degraded-signal
// condition handled downstream (cosine similarity of a zero vector is 0).
var ErrEmptyText = errors.New("embed: empty text")

// Embedder converts text into a fixed-dimensionality embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Gemini embeds text via the Gemini embedding API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini embedder. model defaults to text-embedding-004.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("embed: API key is required")
	}
	if model == "" {
		model = "text-embedding-004"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("embed: create client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Embed returns the embedding vector for text. Fails rather than guessing:
// embedding errors propagate to the caller.
func (g *Gemini) Embed(ctx context.Context, text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	engine.IncrEmbedRequests()
	em := g.client.EmbeddingModel(g.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		engine.IncrEmbedErrors()
		return nil, fmt.Errorf("embed: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		engine.IncrEmbedErrors()
		return nil, errors.New("embed: empty embedding in response")
	}

	vec := make([]float64, len(res.Embedding.Values))
	for i, v := range res.Embedding.Values {
		vec[i] = float64(v)
	}
	return vec, nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
