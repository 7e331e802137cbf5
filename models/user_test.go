package models

import "testing"

func TestQuestionValidate(t *testing.T) {
	valid := Question{
		QuestionDescription: "2+2?",
		QuestionType:        QuestionTypeObjective,
		CorrectAnswer:       "4",
		UserAnswer:          "4",
		IsCorrect:           true,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid question to pass, got %v", err)
	}
	if valid.Difficulty != DifficultyMedium {
		t.Errorf("Expected difficulty to default to medium, got %q", valid.Difficulty)
	}
}

func TestQuestionValidateMissingFields(t *testing.T) {
	base := Question{
		QuestionDescription: "capital of France?",
		QuestionType:        QuestionTypeSubjective,
		CorrectAnswer:       "Paris",
		UserAnswer:          "Lyon",
	}

	cases := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"no description", func(q *Question) { q.QuestionDescription = "" }},
		{"no type", func(q *Question) { q.QuestionType = "" }},
		{"no correct answer", func(q *Question) { q.CorrectAnswer = "" }},
		{"no user answer", func(q *Question) { q.UserAnswer = "" }},
	}
	for _, tc := range cases {
		q := base
		tc.mutate(&q)
		if err := q.Validate(); err != ErrMissingQuestionFields {
			t.Errorf("%s: expected ErrMissingQuestionFields, got %v", tc.name, err)
		}
	}
}

func TestQuestionValidateEnums(t *testing.T) {
	q := Question{
		QuestionDescription: "2+2?",
		QuestionType:        "truefalse",
		CorrectAnswer:       "4",
		UserAnswer:          "4",
	}
	if err := q.Validate(); err != ErrInvalidQuestionType {
		t.Errorf("Expected ErrInvalidQuestionType, got %v", err)
	}

	q.QuestionType = QuestionTypeObjective
	q.Difficulty = "impossible"
	if err := q.Validate(); err != ErrInvalidDifficulty {
		t.Errorf("Expected ErrInvalidDifficulty, got %v", err)
	}

	q.Difficulty = DifficultyHard
	if err := q.Validate(); err != nil {
		t.Errorf("Expected hard difficulty to pass, got %v", err)
	}
}
