package controllers

import (
	"context"

	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/models"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/store"
)

// UserStore is the persistence surface the handlers need. The Mongo-backed
// implementation lives in the store package; tests substitute a fake.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	AppendQuestion(ctx context.Context, id string, question models.Question) (*models.User, error)
	AppendEmbedding(ctx context.Context, id string, embedding models.Embedding) error
	Leaderboard(ctx context.Context) ([]store.LeaderboardEntry, error)
}

// Embedder is the best-effort embedding surface; nil means "no vector"
type Embedder interface {
	Embed(ctx context.Context, text string) []float32
}
