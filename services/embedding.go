package services

import (
	"context"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const embeddingModel = "text-embedding-004"

// EmbeddingService computes text embeddings through the Gemini API. It is a
// best-effort collaborator: Embed returns nil on any failure and callers must
// never gate their own success on it.
type EmbeddingService struct {
	client *genai.Client
}

// NewEmbeddingService builds the Gemini-backed service. With an empty API key
// it returns a disabled service whose Embed always yields nil.
func NewEmbeddingService(ctx context.Context, apiKey string) (*EmbeddingService, error) {
	if apiKey == "" {
		log.Println("Gemini API key not configured, embeddings disabled")
		return &EmbeddingService{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &EmbeddingService{client: client}, nil
}

// Embed returns the embedding vector for text, or nil if the model call fails
// for any reason. Failures are logged server-side only. One attempt, no retry.
func (s *EmbeddingService) Embed(ctx context.Context, text string) []float32 {
	if s.client == nil || text == "" {
		return nil
	}

	em := s.client.EmbeddingModel(embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		log.Printf("Embedding request failed: %v", err)
		return nil
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		log.Println("Embedding response contained no vector")
		return nil
	}
	return res.Embedding.Values
}

// Close releases the underlying API client
func (s *EmbeddingService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
