package controllers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// defaultExercises is the seeded catalog, keyed by category.
var defaultExercises = map[string][]string{
	// weights
	"Legs": {
		"Calf Raises", "Deadlifts", "Hack Squats", "Leg Curls",
		"Leg Extensions", "Leg Press", "Lunges", "Romanian Deadlifts",
		"Squats", "Step-Ups",
	},
	"Chest": {
		"Bench Press", "Cable Flyes", "Chest Pullovers", "Close Grip Bench Press",
		"Decline Bench Press", "Dips", "Dumbbell Flyes", "Incline Bench Press",
		"Machine Chest Press", "Push-Ups",
	},
	"Back": {
		"Bent Over Rows", "Deadlifts", "Face Pulls", "Good Mornings",
		"Hyperextensions", "Lat Pulldowns", "Pull-Ups", "Seated Cable Rows",
		"Single-Arm Dumbbell Rows", "T-Bar Rows",
	},
	"Shoulders": {
		"Arnold Press", "Cable Lateral Raises", "Face Pulls", "Front Raises",
		"Lateral Raises", "Military Press", "Reverse Flyes", "Shrugs",
		"Shoulder Press", "Upright Rows",
	},
	"Arms": {
		"Bicep Curls", "Cable Tricep Kickbacks", "Concentration Curls", "Hammer Curls",
		"Overhead Tricep Extensions", "Preacher Curls", "Reverse Curls", "Skull Crushers",
		"Tricep Dips", "Tricep Pushdowns",
	},
	"Core": {
		"Ab Rollouts", "Bicycle Crunches", "Cable Crunches", "Crunches",
		"Dead Bugs", "Leg Raises", "Mountain Climbers", "Planks",
		"Russian Twists", "Side Planks",
	},

	// cardio
	"Running": {
		"5K Run", "Treadmill", "Interval Running", "Trail Running", "Sprint Training",
	},
	"Cycling": {
		"Road Cycling", "Stationary Bike", "Spin Class", "Mountain Biking", "Interval Cycling",
	},
	"Swimming": {
		"Freestyle", "Backstroke", "Breaststroke", "Butterfly", "Mixed Swim",
	},
	"Rowing": {
		"Rowing Machine", "Outdoor Rowing", "Interval Rowing", "Endurance Row", "Sprint Row",
	},
	"Elliptical": {
		"Standard Elliptical", "Cross-Trainer", "Interval Training", "Reverse Stride", "Hill Climb",
	},
}

// bodyweightDefaults marks the seeded movements performed without
// external load, so a recorded weight of zero is valid for them.
var bodyweightDefaults = map[string]bool{
	"Push-Ups":          true,
	"Pull-Ups":          true,
	"Dips":              true,
	"Tricep Dips":       true,
	"Hyperextensions":   true,
	"Ab Rollouts":       true,
	"Bicycle Crunches":  true,
	"Crunches":          true,
	"Dead Bugs":         true,
	"Leg Raises":        true,
	"Mountain Climbers": true,
	"Planks":            true,
	"Side Planks":       true,
}

// defaultExerciseSeedModels builds one upsert per default exercise.
// $setOnInsert keeps existing documents, user-added or seeded,
// untouched on repeat runs.
func defaultExerciseSeedModels() []mongo.WriteModel {
	var writeModels []mongo.WriteModel
	for category, names := range defaultExercises {
		for _, name := range names {
			filter := bson.M{"name": name, "category": category}
			update := bson.M{"$setOnInsert": bson.M{
				"name":         name,
				"category":     category,
				"isBodyweight": bodyweightDefaults[name],
				"isDefault":    true,
				"createdAt":    time.Now(),
			}}
			writeModels = append(writeModels, mongo.NewUpdateOneModel().
				SetFilter(filter).
				SetUpdate(update).
				SetUpsert(true))
		}
	}
	return writeModels
}
