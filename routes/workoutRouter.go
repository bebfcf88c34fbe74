package routes

import (
	controller "golang-workoutbackend/controllers"

	"github.com/gin-gonic/gin"
)

func WorkoutRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.GET("/workouts", controller.GetWorkouts())
	incomingRoutes.GET("/workouts/progress", controller.GetWorkoutProgress())
	incomingRoutes.GET("/workouts/calendar", controller.GetWorkoutCalendar())
	incomingRoutes.GET("/workouts/:id", controller.GetWorkout())
	incomingRoutes.POST("/workouts", controller.CreateWorkout())
	incomingRoutes.PATCH("/workouts/:id", controller.UpdateWorkout())
	incomingRoutes.DELETE("/workouts/:id", controller.DeleteWorkout())
	incomingRoutes.DELETE("/workouts", controller.DeleteAllWorkouts())
}
