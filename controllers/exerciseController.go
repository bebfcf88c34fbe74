package controllers

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"golang-workoutbackend/database"
	"golang-workoutbackend/models"
)

var validate = validator.New()

// catalogCache holds the grouped catalog listings between writes. Every
// write path (add, delete, seed) flushes it.
var catalogCache = cache.New(5*time.Minute, 10*time.Minute)

const (
	catalogCacheKey     = "catalog"
	categoryCachePrefix = "category:"
)

func exerciseCollection() (*mongo.Collection, error) {
	return database.OpenCollection("exercises")
}

func invalidateCatalogCache() {
	catalogCache.Flush()
}

// GetExercises returns the whole catalog grouped by category, each
// category sorted by name.
func GetExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if cached, ok := catalogCache.Get(catalogCacheKey); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		collection, err := exerciseCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		findOptions := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
		cursor, err := collection.Find(ctx, bson.M{}, findOptions)
		if err != nil {
			log.Errorf("failed to list exercises: %s", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var exercises []models.Exercise
		if err := cursor.All(ctx, &exercises); err != nil {
			log.Errorf("failed to decode exercises: %s", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		grouped := make(map[string][]models.CatalogEntry)
		for _, exercise := range exercises {
			grouped[exercise.Category] = append(grouped[exercise.Category], models.CatalogEntry{
				Name:         exercise.Name,
				IsBodyweight: exercise.IsBodyweight,
			})
		}

		catalogCache.SetDefault(catalogCacheKey, grouped)
		c.JSON(http.StatusOK, grouped)
	}
}

// GetExercisesByCategory returns one category's exercises sorted by
// name. An unknown category yields an empty list.
func GetExercisesByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		category := c.Param("category")
		cacheKey := categoryCachePrefix + category
		if cached, ok := catalogCache.Get(cacheKey); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		collection, err := exerciseCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
		cursor, err := collection.Find(ctx, bson.M{"category": category}, findOptions)
		if err != nil {
			log.Errorf("failed to list %s exercises: %s", category, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entries := make([]models.CatalogEntry, 0)
		if err := cursor.All(ctx, &entries); err != nil {
			log.Errorf("failed to decode %s exercises: %s", category, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		catalogCache.SetDefault(cacheKey, entries)
		c.JSON(http.StatusOK, entries)
	}
}

// CreateExercise adds a custom exercise to the catalog. The name must
// be unique within its category.
func CreateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var exercise models.Exercise
		if err := c.ShouldBindJSON(&exercise); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		exercise.Name = strings.TrimSpace(exercise.Name)
		if validationErr := validate.Struct(exercise); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and category are required"})
			return
		}

		collection, err := exerciseCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		exercise.ID = primitive.NewObjectID()
		exercise.IsDefault = false
		exercise.CreatedAt = time.Now()

		if _, err := collection.InsertOne(ctx, exercise); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Exercise already exists in this category"})
				return
			}
			log.Errorf("failed to insert exercise %q: %s", exercise.Name, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		invalidateCatalogCache()
		c.JSON(http.StatusCreated, exercise)
	}
}

// DeleteExercise removes a custom exercise. Default-seeded entries are
// protected.
func DeleteExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid exercise ID"})
			return
		}

		collection, err := exerciseCollection()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var exercise models.Exercise
		err = collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&exercise)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exercise not found"})
			return
		}
		if err != nil {
			log.Errorf("failed to fetch exercise %s: %s", oid.Hex(), err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if exercise.IsDefault {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete default exercises"})
			return
		}

		var deleted models.Exercise
		err = collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exercise not found"})
			return
		}
		if err != nil {
			log.Errorf("failed to delete exercise %s: %s", oid.Hex(), err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		invalidateCatalogCache()
		c.JSON(http.StatusOK, deleted)
	}
}

// InitializeDefaultExercises seeds the default catalog. Safe to call
// any number of times.
func InitializeDefaultExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := SeedDefaultExercises(ctx); err != nil {
			log.Errorf("failed to seed default exercises: %s", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Default exercises initialized"})
	}
}

// SeedDefaultExercises upserts the default catalog with $setOnInsert
// only, so user-added exercises and previously stored bodyweight flags
// are never overwritten.
func SeedDefaultExercises(ctx context.Context) error {
	collection, err := exerciseCollection()
	if err != nil {
		return err
	}

	writeModels := defaultExerciseSeedModels()
	if len(writeModels) == 0 {
		return nil
	}

	_, err = collection.BulkWrite(ctx, writeModels, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return err
	}

	invalidateCatalogCache()
	return nil
}

// EnsureExerciseIndexes creates the unique (name, category) index that
// backs duplicate detection. Creating an existing index is a no-op.
func EnsureExerciseIndexes(ctx context.Context) error {
	collection, err := exerciseCollection()
	if err != nil {
		return err
	}
	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "category", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// lookupBodyweight resolves an exercise's bodyweight flag from the
// catalog by (name, category), matching the name case-insensitively.
func lookupBodyweight(ctx context.Context, name, category string) (bool, bool) {
	collection, err := exerciseCollection()
	if err != nil {
		return false, false
	}

	pattern := "^" + regexp.QuoteMeta(strings.TrimSpace(name)) + "$"
	var exercise models.Exercise
	err = collection.FindOne(ctx, bson.M{
		"name":     bson.M{"$regex": pattern, "$options": "i"},
		"category": category,
	}).Decode(&exercise)
	if err != nil {
		return false, false
	}
	return exercise.IsBodyweight, true
}
