package controllers

import (
	"log"
	"net/http"

	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/store"

	"github.com/gin-gonic/gin"
)

// LeaderboardController serves the public ranking
type LeaderboardController struct {
	Store UserStore
}

func NewLeaderboardController(userStore UserStore) *LeaderboardController {
	return &LeaderboardController{Store: userStore}
}

// GetLeaderboard returns all users ordered by xp descending
func (l *LeaderboardController) GetLeaderboard(c *gin.Context) {
	entries, err := l.Store.Leaderboard(c)
	if err != nil {
		log.Printf("Failed to fetch leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if entries == nil {
		entries = []store.LeaderboardEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
