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

// AuthController handles registration and login
type AuthController struct {
	Store    UserStore
	Embedder Embedder
}

func NewAuthController(userStore UserStore, embedder Embedder) *AuthController {
	return &AuthController{Store: userStore, Embedder: embedder}
}

// Register creates an account and returns a fresh token. The embedding side
// effect is best-effort and never blocks account creation.
func (a *AuthController) Register(ctx *gin.Context) {
	var request structs.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := &models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Age:          request.Age,
		Standard:     request.Standard,
		AvatarURL:    utils.DefaultAvatarURL(request.Username),
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := a.Store.Create(dbCtx, user)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := utils.GenerateJWTToken(created.ID.Hex(), created.Username, created.Email)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	a.embedProfile(ctx.Request.Context(), created, utils.RegistrationProfileText(created), models.EmbeddingSourceRegister)

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":       created.ID.Hex(),
			"username": created.Username,
			"email":    created.Email,
			"xp":       created.XP,
		},
	})
}

// Login authenticates by username or email
func (a *AuthController) Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := a.Store.FindByIdentifier(dbCtx, request.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Failed to look up user for login: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Username, user.Email)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"username": user.Username,
			"email":    user.Email,
			"xp":       user.XP,
		},
	})
}

// embedProfile computes and stores a profile embedding. Failures are logged
// and swallowed; the caller's response never depends on this.
func (a *AuthController) embedProfile(ctx context.Context, user *models.User, text, source string) {
	vector := a.Embedder.Embed(ctx, text)
	if vector == nil {
		return
	}
	embedding := models.Embedding{
		Text:      text,
		Vector:    vector,
		Source:    source,
		CreatedAt: time.Now(),
	}
	if err := a.Store.AppendEmbedding(ctx, user.ID.Hex(), embedding); err != nil {
		log.Printf("Failed to store embedding for %s: %v", user.Username, err)
	}
}
