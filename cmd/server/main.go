package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/config"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/controllers"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/db"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/routes"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/services"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/store"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)

	database, err := db.ConnectMongoDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := db.EnsureUserIndexes(database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	embedder, err := services.NewEmbeddingService(context.Background(), cfg.Gemini.ApiKey)
	if err != nil {
		log.Fatalf("Failed to initialize embedding service: %v", err)
	}
	defer embedder.Close()

	userStore := store.NewUserStore(database)

	router := setupRouter(userStore, embedder)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(userStore *store.UserStore, embedder *services.EmbeddingService) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	routes.Register(router, routes.Controllers{
		Auth:        controllers.NewAuthController(userStore, embedder),
		Profile:     controllers.NewProfileController(userStore, embedder),
		User:        controllers.NewUserController(userStore),
		Leaderboard: controllers.NewLeaderboardController(userStore),
	})

	return router
}
