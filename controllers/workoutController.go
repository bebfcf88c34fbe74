package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"golang-workoutbackend/database"
	"golang-workoutbackend/helpers"
	"golang-workoutbackend/models"
)

const requestTimeout = 10 * time.Second

func workoutCollection() (*mongo.Collection, error) {
	return database.OpenCollection("workouts")
}

// GetWorkouts lists all workouts, newest first.
func GetWorkouts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		workouts, err := listWorkouts(ctx)
		if err != nil {
			log.Errorf("failed to list workouts: %s", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, workouts)
	}
}

func listWorkouts(ctx context.Context) ([]models.Workout, error) {
	collection, err := workoutCollection()
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}

	workouts := make([]models.Workout, 0)
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetWorkout fetches a single workout by id. A malformed id is treated
// the same as an absent record.
func GetWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No such workout"})
			return
		}

		collection, err := workoutCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var workout models.Workout
		err = collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&workout)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No workout found"})
			return
		}
		if err != nil {
			log.Errorf("failed to fetch workout %s: %s", oid.Hex(), err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, workout)
	}
}

// CreateWorkout validates and persists a submitted workout. Validation
// failures come back as 400 with the full list of offending fields.
func CreateWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var input helpers.WorkoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resolveBodyweight(ctx, &input)

		workout, validationErr := helpers.ValidateWorkout(input, time.Now())
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       validationErr.Error(),
				"emptyFields": validationErr.Fields,
			})
			return
		}

		collection, err := workoutCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		workout.ID = primitive.NewObjectID()
		if _, err := collection.InsertOne(ctx, workout); err != nil {
			log.Errorf("failed to insert workout %q: %s", workout.Title, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Debugf("new %s workout added: %s", workout.WorkoutType, workout.Title)
		c.JSON(http.StatusOK, workout)
	}
}

// UpdateWorkout replaces a workout wholesale: the payload is validated
// like a create and the stored document swapped out, keeping its id.
func UpdateWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No such workout"})
			return
		}

		var input helpers.WorkoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resolveBodyweight(ctx, &input)

		workout, validationErr := helpers.ValidateWorkout(input, time.Now())
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       validationErr.Error(),
				"emptyFields": validationErr.Fields,
			})
			return
		}

		collection, err := workoutCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		workout.ID = oid
		replaceOptions := options.FindOneAndReplace().SetReturnDocument(options.After)

		var updated models.Workout
		err = collection.FindOneAndReplace(ctx, bson.M{"_id": oid}, workout, replaceOptions).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No workout found"})
			return
		}
		if err != nil {
			log.Errorf("failed to update workout %s: %s", oid.Hex(), err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteWorkout removes one workout by id and returns the removed
// record.
func DeleteWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No such workout"})
			return
		}

		collection, err := workoutCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var deleted models.Workout
		err = collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No workout found"})
			return
		}
		if err != nil {
			log.Errorf("failed to delete workout %s: %s", oid.Hex(), err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}

// DeleteAllWorkouts wipes the workout collection.
func DeleteAllWorkouts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		collection, err := workoutCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := collection.DeleteMany(ctx, bson.M{})
		if err != nil {
			log.Errorf("failed to delete workouts: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting workouts"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No workouts found to delete"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%d workouts deleted successfully", result.DeletedCount)})
	}
}

// GetWorkoutProgress serves the per-exercise progress series consumed
// by the chart and the tabular history view.
func GetWorkoutProgress() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		exercise := c.Query("exercise")
		if exercise == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "exercise query parameter is required"})
			return
		}

		workoutType := c.Query("type")
		if workoutType == "" {
			workoutType = models.WorkoutTypeWeights
		}
		if workoutType != models.WorkoutTypeWeights && workoutType != models.WorkoutTypeCardio {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be weights or cardio"})
			return
		}

		workouts, err := listWorkouts(ctx)
		if err != nil {
			log.Errorf("failed to list workouts for progress: %s", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, helpers.BuildProgressSeries(workouts, exercise, workoutType))
	}
}

// GetWorkoutCalendar serves the day-by-day grouping. The tz query
// parameter names the viewer's IANA time zone; the server's local zone
// is the fallback.
func GetWorkoutCalendar() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		loc := time.Local
		if tz := c.Query("tz"); tz != "" {
			parsed, err := time.LoadLocation(tz)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown time zone: " + tz})
				return
			}
			loc = parsed
		}

		workouts, err := listWorkouts(ctx)
		if err != nil {
			log.Errorf("failed to list workouts for calendar: %s", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, helpers.GroupWorkoutsByDate(workouts, loc))
	}
}

// resolveBodyweight fills in a missing bodyweight flag from the
// exercise catalog. A flag supplied by the client wins, so weighted and
// unweighted variants of the same movement stay possible.
func resolveBodyweight(ctx context.Context, input *helpers.WorkoutInput) {
	if input.IsBodyweight != nil || input.Title == "" || input.Category == "" {
		return
	}
	if flag, ok := lookupBodyweight(ctx, input.Title, input.Category); ok {
		input.IsBodyweight = &flag
	}
}
