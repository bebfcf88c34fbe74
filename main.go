package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	controller "golang-workoutbackend/controllers"
	"golang-workoutbackend/database"
	middleware "golang-workoutbackend/middleware"
	routes "golang-workoutbackend/routes"
)

const connectRetryInterval = 10 * time.Second

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, reading configuration from the environment")
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.Default())

	// liveness probe, available regardless of store connectivity
	router.GET("/api/health", HealthCheck())

	api := router.Group("/api")
	api.Use(middleware.DatabaseCheck())
	{
		routes.WorkoutRoutes(api)
		routes.ExerciseRoutes(api)
	}

	// the store connection is established in the background: until it
	// is up, workout and exercise routes answer 503
	go database.ConnectWithRetry(context.Background(), connectRetryInterval, func(ctx context.Context) {
		if err := controller.EnsureExerciseIndexes(ctx); err != nil {
			log.Errorf("failed to ensure exercise indexes: %s", err)
		}
		if err := controller.SeedDefaultExercises(ctx); err != nil {
			log.Errorf("failed to initialize default exercises: %s", err)
			return
		}
		log.Info("default exercises initialized")
	})

	log.Infof("server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %s", err)
	}
}

// HealthCheck reports liveness and store connectivity.
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disconnected"
		if database.Connected() {
			dbStatus = "connected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"message":  "Service is healthy",
			"dbStatus": dbStatus,
		})
	}
}
