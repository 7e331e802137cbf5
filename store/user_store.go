package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("username or email already taken")
)

// updatableFields is the whitelist for direct field overwrites. Anything else
// in an update payload is ignored, not rejected.
var updatableFields = map[string]bool{
	"firstName":       true,
	"lastName":        true,
	"age":             true,
	"standard":        true,
	"bio":             true,
	"school":          true,
	"subjects":        true,
	"avatarUrl":       true,
	"xp":              true,
	"gamePoints":      true,
	"gamesWon":        true,
	"questionsSolved": true,
	"badges":          true,
}

// LeaderboardEntry is the per-user projection returned by Leaderboard
type LeaderboardEntry struct {
	Username   string `bson:"username" json:"username"`
	XP         int    `bson:"xp" json:"xp"`
	GamePoints int    `bson:"gamePoints" json:"gamePoints"`
	GamesWon   int    `bson:"gamesWon" json:"gamesWon"`
}

// UserStore holds the persistence operations over the users collection
type UserStore struct {
	users *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{users: db.Collection("users")}
}

// Create inserts a new user document. The pre-insert lookup gives a clean
// conflict for the common case; the unique indexes catch the race window.
func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{
		"$or": []bson.M{
			{"username": user.Username},
			{"email": user.Email},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if count > 0 {
		return nil, ErrConflict
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// FindByIdentifier looks a user up by username or email
func (s *UserStore) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{
		"$or": []bson.M{
			{"username": identifier},
			{"email": identifier},
		},
	}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Update applies a whitelisted-field merge and returns the updated document
func (s *UserStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	for name, value := range fields {
		if updatableFields[name] {
			set[name] = value
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// AppendQuestion validates the question and appends it to the user's history.
// Validation errors are returned as-is so callers can map them to bad input.
func (s *UserStore) AppendQuestion(ctx context.Context, id string, question models.Question) (*models.User, error) {
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if question.AnsweredAt.IsZero() {
		question.AnsweredAt = time.Now()
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{
		"$push": bson.M{"questions": question},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to append question: %w", err)
	}
	return &user, nil
}

// AppendEmbedding pushes an embedding record, keeping only the most recent
// MaxEmbeddings entries.
func (s *UserStore) AppendEmbedding(ctx context.Context, id string, embedding models.Embedding) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{
		"$push": bson.M{
			"embeddings": bson.M{
				"$each":  []models.Embedding{embedding},
				"$slice": -models.MaxEmbeddings,
			},
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to append embedding: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Leaderboard returns every user ordered by xp descending. Full scan, no
// pagination.
func (s *UserStore) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "xp", Value: -1}}).
		SetProjection(bson.M{"username": 1, "xp": 1, "gamePoints": 1, "gamesWon": 1})

	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []LeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return entries, nil
}
