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
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/utils"

	"github.com/gin-gonic/gin"
)

// ProfileController handles the profile update and /me endpoints
type ProfileController struct {
	Store    UserStore
	Embedder Embedder
}

func NewProfileController(userStore UserStore, embedder Embedder) *ProfileController {
	return &ProfileController{Store: userStore, Embedder: embedder}
}

// UpdateProfile merges the provided profile fields, then recomputes and
// embeds the profile text (best-effort, capped history).
func (p *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var request structs.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if request.Bio != nil {
		fields["bio"] = *request.Bio
	}
	if request.School != nil {
		fields["school"] = *request.School
	}
	if request.Subjects != nil {
		fields["subjects"] = *request.Subjects
	}
	if request.AvatarURL != nil {
		fields["avatarUrl"] = *request.AvatarURL
	}
	if request.Age != nil {
		fields["age"] = *request.Age
	}
	if request.Standard != nil {
		fields["standard"] = *request.Standard
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := p.Store.Update(dbCtx, userID, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to update profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	text := utils.ProfileText(user)
	if vector := p.Embedder.Embed(ctx.Request.Context(), text); vector != nil {
		embedding := models.Embedding{
			Text:      text,
			Vector:    vector,
			Source:    models.EmbeddingSourceProfileUpdate,
			CreatedAt: time.Now(),
		}
		if err := p.Store.AppendEmbedding(dbCtx, userID, embedding); err != nil {
			log.Printf("Failed to store profile embedding: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "xp": user.XP})
}

// GetMe returns the caller's full user document. The password hash is never
// serialized.
func (p *ProfileController) GetMe(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := p.Store.FindByID(dbCtx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
