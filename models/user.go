package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Embedding source tags
const (
	EmbeddingSourceRegister      = "register"
	EmbeddingSourceProfileUpdate = "profile_update"
	EmbeddingSourceUserProfile   = "user_profile"
)

// Question type and difficulty values
const (
	QuestionTypeObjective  = "objective"
	QuestionTypeSubjective = "subjective"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var (
	ErrMissingQuestionFields = errors.New("question is missing required fields")
	ErrInvalidQuestionType   = errors.New("questionType must be objective or subjective")
	ErrInvalidDifficulty     = errors.New("difficulty must be easy, medium or hard")
)

// MaxEmbeddings caps the per-user embedding history; older entries are dropped
const MaxEmbeddings = 8

// User defines a registered account with its gamification state
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username        string             `bson:"username" json:"username"`
	Email           string             `bson:"email" json:"email"`
	PasswordHash    string             `bson:"passwordHash" json:"-"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Age             int                `bson:"age,omitempty" json:"age,omitempty"`
	Standard        string             `bson:"standard,omitempty" json:"standard,omitempty"`
	Bio             string             `bson:"bio,omitempty" json:"bio,omitempty"`
	School          string             `bson:"school,omitempty" json:"school,omitempty"`
	Subjects        []string           `bson:"subjects,omitempty" json:"subjects,omitempty"`
	AvatarURL       string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	XP              int                `bson:"xp" json:"xp"`
	GamePoints      int                `bson:"gamePoints" json:"gamePoints"`
	GamesWon        int                `bson:"gamesWon" json:"gamesWon"`
	QuestionsSolved int                `bson:"questionsSolved" json:"questionsSolved"`
	Badges          []string           `bson:"badges,omitempty" json:"badges,omitempty"`
	Embeddings      []Embedding        `bson:"embeddings,omitempty" json:"embeddings,omitempty"`
	Questions       []Question         `bson:"questions,omitempty" json:"questions,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Embedding is one entry of a user's capped embedding history
type Embedding struct {
	Text      string    `bson:"text" json:"text"`
	Vector    []float32 `bson:"vector" json:"vector"`
	Source    string    `bson:"source" json:"source"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Question is one answered question in a user's append-only history
type Question struct {
	QuestionDescription string    `bson:"questionDescription" json:"questionDescription"`
	QuestionType        string    `bson:"questionType" json:"questionType"`
	Difficulty          string    `bson:"difficulty" json:"difficulty"`
	CorrectAnswer       string    `bson:"correctAnswer" json:"correctAnswer"`
	UserAnswer          string    `bson:"userAnswer" json:"userAnswer"`
	IsCorrect           bool      `bson:"isCorrect" json:"isCorrect"`
	AnsweredAt          time.Time `bson:"answeredAt" json:"answeredAt"`
}

// Validate checks the required question fields and fills the difficulty default.
// It must be called before a question is appended to a user's history.
func (q *Question) Validate() error {
	if q.QuestionDescription == "" || q.QuestionType == "" || q.CorrectAnswer == "" || q.UserAnswer == "" {
		return ErrMissingQuestionFields
	}
	if q.QuestionType != QuestionTypeObjective && q.QuestionType != QuestionTypeSubjective {
		return ErrInvalidQuestionType
	}
	switch q.Difficulty {
	case "":
		q.Difficulty = DifficultyMedium
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return ErrInvalidDifficulty
	}
	return nil
}
