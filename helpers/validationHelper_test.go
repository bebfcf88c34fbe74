package helpers_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-workoutbackend/helpers"
	"golang-workoutbackend/models"
)

var testNow = time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

func weight(v float64) helpers.WeightInput {
	return helpers.WeightInput{Value: v, Present: true}
}

func boolPtr(v bool) *bool {
	return &v
}

func weightsInput() helpers.WorkoutInput {
	return helpers.WorkoutInput{
		Title:       "Bench Press",
		Category:    "Chest",
		WorkoutType: models.WorkoutTypeWeights,
		Sets: []helpers.SetInput{
			{SetNumber: 1, Reps: 10, Weight: weight(60)},
			{SetNumber: 2, Reps: 8, Weight: weight(65)},
		},
	}
}

func cardioInput() helpers.WorkoutInput {
	return helpers.WorkoutInput{
		Title:       "5K Run",
		Category:    "Running",
		WorkoutType: models.WorkoutTypeCardio,
		Cardio: &helpers.CardioInput{
			Duration:     30,
			Distance:     5,
			DistanceUnit: "km",
		},
	}
}

func TestValidateWorkout_WeightsValid(t *testing.T) {
	workout, validationErr := helpers.ValidateWorkout(weightsInput(), testNow)
	require.Nil(t, validationErr)

	assert.Equal(t, "Bench Press", workout.Title)
	assert.Equal(t, "Chest", workout.Category)
	assert.Equal(t, models.WorkoutTypeWeights, workout.WorkoutType)
	assert.False(t, workout.IsBodyweight)
	assert.Nil(t, workout.Cardio)
	assert.Equal(t, testNow, workout.CreatedAt)
	require.Len(t, workout.Sets, 2)
	assert.Equal(t, models.Set{SetNumber: 1, Reps: 10, Weight: 60}, workout.Sets[0])
	assert.Equal(t, models.Set{SetNumber: 2, Reps: 8, Weight: 65}, workout.Sets[1])
}

func TestValidateWorkout_MissingEverything(t *testing.T) {
	_, validationErr := helpers.ValidateWorkout(helpers.WorkoutInput{}, testNow)
	require.NotNil(t, validationErr)
	assert.ElementsMatch(t, []string{"title", "category", "workoutType"}, validationErr.Fields)
}

func TestValidateWorkout_CollectsAllViolations(t *testing.T) {
	input := helpers.WorkoutInput{
		WorkoutType: models.WorkoutTypeWeights,
		Sets: []helpers.SetInput{
			{Reps: 0},
			{Reps: 10, Weight: weight(-5)},
		},
	}
	_, validationErr := helpers.ValidateWorkout(input, testNow)
	require.NotNil(t, validationErr)
	assert.ElementsMatch(t, []string{
		"title", "category",
		"sets[0].reps", "sets[0].weight",
		"sets[1].weight",
	}, validationErr.Fields)
}

func TestValidateWorkout_EmptySets(t *testing.T) {
	input := weightsInput()
	input.Sets = nil
	_, validationErr := helpers.ValidateWorkout(input, testNow)
	require.NotNil(t, validationErr)
	assert.Equal(t, []string{"sets"}, validationErr.Fields)
}

func TestValidateWorkout_WeightThresholds(t *testing.T) {
	tests := []struct {
		name       string
		bodyweight *bool
		weight     float64
		wantFields []string
	}{
		{"zero weight rejected without bodyweight flag", nil, 0, []string{"sets[0].weight"}},
		{"zero weight rejected with explicit false", boolPtr(false), 0, []string{"sets[0].weight"}},
		{"zero weight allowed for bodyweight exercise", boolPtr(true), 0, nil},
		{"negative weight rejected for bodyweight exercise", boolPtr(true), -1, []string{"sets[0].weight"}},
		{"negative weight rejected otherwise", nil, -10, []string{"sets[0].weight"}},
		{"positive weight always fine", nil, 42.5, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := weightsInput()
			input.IsBodyweight = tc.bodyweight
			input.Sets = []helpers.SetInput{{SetNumber: 1, Reps: 10, Weight: weight(tc.weight)}}

			_, validationErr := helpers.ValidateWorkout(input, testNow)
			if tc.wantFields == nil {
				assert.Nil(t, validationErr)
			} else {
				require.NotNil(t, validationErr)
				assert.Equal(t, tc.wantFields, validationErr.Fields)
			}
		})
	}
}

func TestValidateWorkout_BodyweightSquatsZeroWeight(t *testing.T) {
	input := helpers.WorkoutInput{
		Title:        "Squats",
		Category:     "Legs",
		WorkoutType:  models.WorkoutTypeWeights,
		IsBodyweight: boolPtr(true),
		Sets:         []helpers.SetInput{{SetNumber: 1, Reps: 10, Weight: weight(0)}},
	}
	workout, validationErr := helpers.ValidateWorkout(input, testNow)
	require.Nil(t, validationErr)
	assert.True(t, workout.IsBodyweight)
	require.Len(t, workout.Sets, 1)
	assert.Zero(t, workout.Sets[0].Weight)
}

func TestValidateWorkout_CardioValid(t *testing.T) {
	workout, validationErr := helpers.ValidateWorkout(cardioInput(), testNow)
	require.Nil(t, validationErr)

	assert.Equal(t, models.WorkoutTypeCardio, workout.WorkoutType)
	assert.Nil(t, workout.Sets)
	require.NotNil(t, workout.Cardio)
	assert.Equal(t, models.Cardio{Duration: 30, Distance: 5, DistanceUnit: "km"}, *workout.Cardio)
}

func TestValidateWorkout_CardioViolations(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*helpers.WorkoutInput)
		wantFields []string
	}{
		{"missing cardio block", func(in *helpers.WorkoutInput) { in.Cardio = nil }, []string{"cardio"}},
		{"zero duration", func(in *helpers.WorkoutInput) { in.Cardio.Duration = 0 }, []string{"cardio.duration"}},
		{"negative duration", func(in *helpers.WorkoutInput) { in.Cardio.Duration = -3 }, []string{"cardio.duration"}},
		{"zero distance", func(in *helpers.WorkoutInput) { in.Cardio.Distance = 0 }, []string{"cardio.distance"}},
		{"missing unit", func(in *helpers.WorkoutInput) { in.Cardio.DistanceUnit = "" }, []string{"cardio.distanceUnit"}},
		{"bad unit", func(in *helpers.WorkoutInput) { in.Cardio.DistanceUnit = "furlongs" }, []string{"cardio.distanceUnit"}},
		{
			"everything wrong at once",
			func(in *helpers.WorkoutInput) {
				in.Cardio.Duration = 0
				in.Cardio.Distance = -1
				in.Cardio.DistanceUnit = ""
			},
			[]string{"cardio.duration", "cardio.distance", "cardio.distanceUnit"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := cardioInput()
			tc.mutate(&input)
			_, validationErr := helpers.ValidateWorkout(input, testNow)
			require.NotNil(t, validationErr)
			assert.ElementsMatch(t, tc.wantFields, validationErr.Fields)
		})
	}
}

func TestValidateWorkout_UnknownWorkoutType(t *testing.T) {
	input := weightsInput()
	input.WorkoutType = "crossfit"
	_, validationErr := helpers.ValidateWorkout(input, testNow)
	require.NotNil(t, validationErr)
	assert.Equal(t, []string{"workoutType"}, validationErr.Fields)
}

func TestValidateWorkout_UnknownCategory(t *testing.T) {
	input := weightsInput()
	input.Category = "Forearms"
	_, validationErr := helpers.ValidateWorkout(input, testNow)
	require.NotNil(t, validationErr)
	assert.Equal(t, []string{"category"}, validationErr.Fields)
}

func TestValidateWorkout_CreatedAt(t *testing.T) {
	t.Run("defaults to now", func(t *testing.T) {
		workout, validationErr := helpers.ValidateWorkout(weightsInput(), testNow)
		require.Nil(t, validationErr)
		assert.Equal(t, testNow, workout.CreatedAt)
	})

	t.Run("accepts a plain date", func(t *testing.T) {
		input := weightsInput()
		input.CreatedAt = "2025-01-15"
		workout, validationErr := helpers.ValidateWorkout(input, testNow)
		require.Nil(t, validationErr)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), workout.CreatedAt)
	})

	t.Run("accepts RFC3339", func(t *testing.T) {
		input := weightsInput()
		input.CreatedAt = "2025-01-15T07:45:00Z"
		workout, validationErr := helpers.ValidateWorkout(input, testNow)
		require.Nil(t, validationErr)
		assert.Equal(t, time.Date(2025, 1, 15, 7, 45, 0, 0, time.UTC), workout.CreatedAt)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		input := weightsInput()
		input.CreatedAt = "yesterday"
		_, validationErr := helpers.ValidateWorkout(input, testNow)
		require.NotNil(t, validationErr)
		assert.Equal(t, []string{"createdAt"}, validationErr.Fields)
	})
}

func TestValidateWorkout_RenumbersSets(t *testing.T) {
	input := weightsInput()
	input.Sets = []helpers.SetInput{
		{SetNumber: 7, Reps: 10, Weight: weight(60)},
		{SetNumber: 0, Reps: 8, Weight: weight(60)},
		{SetNumber: 3, Reps: 6, Weight: weight(60)},
	}
	workout, validationErr := helpers.ValidateWorkout(input, testNow)
	require.Nil(t, validationErr)
	for i, set := range workout.Sets {
		assert.Equal(t, i+1, set.SetNumber)
	}
}

func TestWorkoutInput_NumericStringCoercion(t *testing.T) {
	payload := `{
		"title": "Deadlifts",
		"category": "Legs",
		"workoutType": "weights",
		"sets": [{"setNumber": "1", "reps": "5", "weight": "120.5"}]
	}`

	var input helpers.WorkoutInput
	require.NoError(t, json.Unmarshal([]byte(payload), &input))

	workout, validationErr := helpers.ValidateWorkout(input, testNow)
	require.Nil(t, validationErr)
	require.Len(t, workout.Sets, 1)
	assert.Equal(t, 5, workout.Sets[0].Reps)
	assert.Equal(t, 120.5, workout.Sets[0].Weight)
}

func TestValidateWorkout_BlankedWeightCountsAsMissing(t *testing.T) {
	// a cleared form input posts "", which must surface as a missing
	// weight even for bodyweight exercises, where 0 would be valid
	payload := `{
		"title": "Push-Ups",
		"category": "Chest",
		"workoutType": "weights",
		"isBodyweight": true,
		"sets": [{"setNumber": 1, "reps": 15, "weight": ""}]
	}`

	var input helpers.WorkoutInput
	require.NoError(t, json.Unmarshal([]byte(payload), &input))
	require.Len(t, input.Sets, 1)
	assert.False(t, input.Sets[0].Weight.Present)

	_, validationErr := helpers.ValidateWorkout(input, testNow)
	require.NotNil(t, validationErr)
	assert.Equal(t, []string{"sets[0].weight"}, validationErr.Fields)
}

func TestWorkoutInput_NonNumericStringRejected(t *testing.T) {
	var input helpers.WorkoutInput
	err := json.Unmarshal([]byte(`{"sets": [{"reps": "lots"}]}`), &input)
	assert.Error(t, err)
}
