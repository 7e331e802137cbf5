package routes

import (
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/controllers"
	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the handler groups wired in main
type Controllers struct {
	Auth        *controllers.AuthController
	Profile     *controllers.ProfileController
	User        *controllers.UserController
	Leaderboard *controllers.LeaderboardController
}

// Register mounts all API routes on the router
func Register(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	api.GET("/health", HealthRouteHandler)
	api.POST("/register", c.Auth.Register)
	api.POST("/login", c.Auth.Login)
	api.GET("/leaderboard", c.Leaderboard.GetLeaderboard)

	// Protected routes (JWT auth)
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.PUT("/profile", c.Profile.UpdateProfile)
		auth.GET("/me", c.Profile.GetMe)
		auth.PUT("/user", c.User.UpdateUser)
	}
}

func HealthRouteHandler(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"ok": true})
}
