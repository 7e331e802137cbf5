package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/models"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/store"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/structs"

	"github.com/gin-gonic/gin"
)

// UserController handles the generic whitelisted user update
type UserController struct {
	Store UserStore
}

func NewUserController(userStore UserStore) *UserController {
	return &UserController{Store: userStore}
}

// UpdateUser overwrites whitelisted fields and optionally appends a single
// question to the history. An invalid question rejects the whole payload
// before anything is written.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var request structs.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	fields := request.Fields()
	if len(fields) == 0 && len(request.Questions) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}
	if len(request.Questions) > 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "questions accepts a single entry"})
		return
	}

	var question *models.Question
	if len(request.Questions) == 1 {
		payload := request.Questions[0]
		if payload.IsCorrect == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question object", "message": models.ErrMissingQuestionFields.Error()})
			return
		}
		q := models.Question{
			QuestionDescription: payload.QuestionDescription,
			QuestionType:        payload.QuestionType,
			Difficulty:          payload.Difficulty,
			CorrectAnswer:       payload.CorrectAnswer,
			UserAnswer:          payload.UserAnswer,
			IsCorrect:           *payload.IsCorrect,
		}
		if err := q.Validate(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question object", "message": err.Error()})
			return
		}
		question = &q
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user *models.User
	var err error

	if len(fields) > 0 {
		user, err = u.Store.Update(dbCtx, userID, fields)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			log.Printf("Failed to update user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	if question != nil {
		user, err = u.Store.AppendQuestion(dbCtx, userID, *question)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			case errors.Is(err, models.ErrMissingQuestionFields),
				errors.Is(err, models.ErrInvalidQuestionType),
				errors.Is(err, models.ErrInvalidDifficulty):
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question object", "message": err.Error()})
			default:
				log.Printf("Failed to append question: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}
