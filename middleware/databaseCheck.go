package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golang-workoutbackend/database"
)

// DatabaseCheck answers 503 until the store is configured and
// reachable, so workout and exercise routes degrade instead of
// crashing while the connection is pending.
func DatabaseCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.MongoURI() == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Database configuration pending"})
			return
		}
		if !database.Connected() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Database connection not ready"})
			return
		}
		c.Next()
	}
}
