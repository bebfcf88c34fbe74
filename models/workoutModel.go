package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	WorkoutTypeWeights = "weights"
	WorkoutTypeCardio  = "cardio"
)

// Set is one reps/weight pair within a weights workout. Weight zero is
// allowed for bodyweight exercises.
type Set struct {
	SetNumber int     `json:"setNumber" bson:"setNumber"`
	Reps      int     `json:"reps" bson:"reps"`
	Weight    float64 `json:"weight" bson:"weight"`
}

// Cardio holds the metrics of a cardio session. Duration is in minutes,
// distance in the given unit (km or mi).
type Cardio struct {
	Duration     float64 `json:"duration" bson:"duration"`
	Distance     float64 `json:"distance" bson:"distance"`
	DistanceUnit string  `json:"distanceUnit" bson:"distanceUnit"`
}

// Workout is one logged session. Exactly one of Sets/Cardio is active,
// selected by WorkoutType.
type Workout struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Title        string             `json:"title" bson:"title"`
	Category     string             `json:"category" bson:"category"`
	WorkoutType  string             `json:"workoutType" bson:"workoutType"`
	IsBodyweight bool               `json:"isBodyweight" bson:"isBodyweight"`
	Sets         []Set              `json:"sets,omitempty" bson:"sets,omitempty"`
	Cardio       *Cardio            `json:"cardio,omitempty" bson:"cardio,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// workoutDoc mirrors the stored document, including the flat
// reps/weight/sets-count shape written by early versions of the app.
type workoutDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	Category     string             `bson:"category"`
	WorkoutType  string             `bson:"workoutType"`
	IsBodyweight bool               `bson:"isBodyweight"`
	Sets         bson.RawValue      `bson:"sets"`
	Cardio       *Cardio            `bson:"cardio"`
	Reps         *int               `bson:"reps"`
	Weight       *float64           `bson:"weight"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// UnmarshalBSON migrates legacy documents at the storage boundary: a
// missing workoutType decodes as weights, and the old flat reps/weight
// fields are wrapped into a single-entry set list. The rest of the code
// only ever sees the explicit tagged union.
func (w *Workout) UnmarshalBSON(data []byte) error {
	var doc workoutDoc
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	w.ID = doc.ID
	w.Title = doc.Title
	w.Category = doc.Category
	w.WorkoutType = doc.WorkoutType
	w.IsBodyweight = doc.IsBodyweight
	w.Cardio = doc.Cardio
	w.CreatedAt = doc.CreatedAt
	w.Sets = nil

	if doc.Sets.Type == bson.TypeArray {
		if err := doc.Sets.Unmarshal(&w.Sets); err != nil {
			return err
		}
	} else if doc.Reps != nil || doc.Weight != nil {
		// legacy flat record: "sets" held a set count, reps/weight a
		// single measurement
		set := Set{SetNumber: 1}
		if doc.Reps != nil {
			set.Reps = *doc.Reps
		}
		if doc.Weight != nil {
			set.Weight = *doc.Weight
		}
		w.Sets = []Set{set}
	}

	if w.WorkoutType == "" {
		w.WorkoutType = WorkoutTypeWeights
	}
	return nil
}
