package routes

import (
	controller "golang-workoutbackend/controllers"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.GET("/exercises", controller.GetExercises())
	incomingRoutes.GET("/exercises/category/:category", controller.GetExercisesByCategory())
	incomingRoutes.POST("/exercises", controller.CreateExercise())
	incomingRoutes.POST("/exercises/initialize", controller.InitializeDefaultExercises())
	incomingRoutes.DELETE("/exercises/:id", controller.DeleteExercise())
}
