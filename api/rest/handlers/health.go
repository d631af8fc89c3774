package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/customeros/socialstack/internal/repository"
)

type StatsProvider interface {
	Stats() repository.Stats
}

// HealthCheck provides a simple health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Status returns the current size of each collection
func Status(store StatsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := store.Stats()
		c.JSON(http.StatusOK, gin.H{
			"users":    stats.Users,
			"profiles": stats.Profiles,
			"posts":    stats.Posts,
		})
	}
}
