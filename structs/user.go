package structs

// RegisterRequest is the POST /api/register body
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Age       int    `json:"age"`
	Standard  string `json:"standard"`
	Password  string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the POST /api/login body; identifier is username or email
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the PUT /api/profile body. Pointers distinguish
// "not sent" from an explicit zero value.
type UpdateProfileRequest struct {
	Bio       *string   `json:"bio"`
	School    *string   `json:"school"`
	Subjects  *[]string `json:"subjects"`
	AvatarURL *string   `json:"avatarUrl"`
	Age       *int      `json:"age"`
	Standard  *string   `json:"standard"`
}

// QuestionPayload is one question-history entry in a PUT /api/user body.
// IsCorrect is a pointer so a missing boolean can be told apart from false.
type QuestionPayload struct {
	QuestionDescription string `json:"questionDescription"`
	QuestionType        string `json:"questionType"`
	Difficulty          string `json:"difficulty"`
	CorrectAnswer       string `json:"correctAnswer"`
	UserAnswer          string `json:"userAnswer"`
	IsCorrect           *bool  `json:"isCorrect"`
}

// UpdateUserRequest is the PUT /api/user body: any whitelisted field plus an
// optional single-question append.
type UpdateUserRequest struct {
	FirstName       *string           `json:"firstName"`
	LastName        *string           `json:"lastName"`
	Age             *int              `json:"age"`
	Standard        *string           `json:"standard"`
	Bio             *string           `json:"bio"`
	School          *string           `json:"school"`
	Subjects        *[]string         `json:"subjects"`
	AvatarURL       *string           `json:"avatarUrl"`
	XP              *int              `json:"xp"`
	GamePoints      *int              `json:"gamePoints"`
	GamesWon        *int              `json:"gamesWon"`
	QuestionsSolved *int              `json:"questionsSolved"`
	Badges          *[]string         `json:"badges"`
	Questions       []QuestionPayload `json:"questions"`
}

// Fields collects the explicitly provided whitelisted fields as a merge map
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.FirstName != nil {
		fields["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["lastName"] = *r.LastName
	}
	if r.Age != nil {
		fields["age"] = *r.Age
	}
	if r.Standard != nil {
		fields["standard"] = *r.Standard
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	if r.School != nil {
		fields["school"] = *r.School
	}
	if r.Subjects != nil {
		fields["subjects"] = *r.Subjects
	}
	if r.AvatarURL != nil {
		fields["avatarUrl"] = *r.AvatarURL
	}
	if r.XP != nil {
		fields["xp"] = *r.XP
	}
	if r.GamePoints != nil {
		fields["gamePoints"] = *r.GamePoints
	}
	if r.GamesWon != nil {
		fields["gamesWon"] = *r.GamesWon
	}
	if r.QuestionsSolved != nil {
		fields["questionsSolved"] = *r.QuestionsSolved
	}
	if r.Badges != nil {
		fields["badges"] = *r.Badges
	}
	return fields
}
