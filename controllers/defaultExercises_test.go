package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"golang-workoutbackend/models"
)

func TestDefaultExerciseSeedModels(t *testing.T) {
	writeModels := defaultExerciseSeedModels()

	// 6 weight categories x 10 plus 5 cardio categories x 5
	assert.Len(t, writeModels, 85)

	for _, writeModel := range writeModels {
		updateModel, ok := writeModel.(*mongo.UpdateOneModel)
		require.True(t, ok)

		require.NotNil(t, updateModel.Upsert)
		assert.True(t, *updateModel.Upsert)

		// only $setOnInsert, so repeat seeding never touches existing
		// documents
		update, ok := updateModel.Update.(bson.M)
		require.True(t, ok)
		require.Len(t, update, 1)
		setOnInsert, ok := update["$setOnInsert"].(bson.M)
		require.True(t, ok)

		assert.Equal(t, true, setOnInsert["isDefault"])

		filter, ok := updateModel.Filter.(bson.M)
		require.True(t, ok)
		assert.Equal(t, filter["name"], setOnInsert["name"])
		assert.Equal(t, filter["category"], setOnInsert["category"])
	}
}

func TestDefaultExercises_CategoriesAreValid(t *testing.T) {
	for category := range defaultExercises {
		assert.True(t, models.IsValidCategory(category), category)
	}
}

func TestDefaultExercises_BodyweightFlags(t *testing.T) {
	seeded := make(map[string]bool)
	for _, names := range defaultExercises {
		for _, name := range names {
			seeded[name] = true
		}
	}

	// every flagged movement must actually be part of the seed list
	for name := range bodyweightDefaults {
		assert.True(t, seeded[name], name)
	}

	assert.True(t, bodyweightDefaults["Push-Ups"])
	assert.True(t, bodyweightDefaults["Pull-Ups"])
	assert.False(t, bodyweightDefaults["Bench Press"])
}
