package helpers

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang-workoutbackend/models"
)

// ProgressPoint is one workout on the per-exercise progress chart.
// Weights points carry avgWeight/maxReps plus the raw sets for the
// history table; cardio points carry duration, distance and pace. The
// metric fields are pointers so that presence is decided by the workout
// type: a legitimate zero (bodyweight set logged with weight 0) still
// serializes.
type ProgressPoint struct {
	Date      string    `json:"date"`
	Timestamp int64     `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`

	AvgWeight *float64     `json:"avgWeight,omitempty"`
	MaxReps   *int         `json:"maxReps,omitempty"`
	Sets      []models.Set `json:"sets,omitempty"`

	Duration     *float64 `json:"duration,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	DistanceUnit string   `json:"distanceUnit,omitempty"`
	Pace         *float64 `json:"pace,omitempty"`
}

// BuildProgressSeries derives the chart series for one exercise from
// the full workout list: it keeps workouts whose title matches
// case-insensitively and whose type matches workoutType (records with
// no type count as weights), computes the per-workout metrics and
// returns the points sorted ascending by time, stable on ties.
func BuildProgressSeries(workouts []models.Workout, exerciseTitle, workoutType string) []ProgressPoint {
	points := make([]ProgressPoint, 0, len(workouts))
	for _, workout := range workouts {
		if !strings.EqualFold(workout.Title, exerciseTitle) {
			continue
		}
		recordType := workout.WorkoutType
		if recordType == "" {
			recordType = models.WorkoutTypeWeights
		}
		if recordType != workoutType {
			continue
		}

		point := ProgressPoint{
			Date:      workout.CreatedAt.Format("2006-01-02"),
			Timestamp: workout.CreatedAt.UnixMilli(),
			CreatedAt: workout.CreatedAt,
		}

		if workoutType == models.WorkoutTypeWeights {
			if len(workout.Sets) == 0 {
				continue
			}
			var totalWeight float64
			maxReps := 0
			for _, set := range workout.Sets {
				totalWeight += set.Weight
				if set.Reps > maxReps {
					maxReps = set.Reps
				}
			}
			avgWeight := round1(totalWeight / float64(len(workout.Sets)))
			point.AvgWeight = &avgWeight
			point.MaxReps = &maxReps
			point.Sets = workout.Sets
		} else {
			if workout.Cardio == nil {
				continue
			}
			duration := workout.Cardio.Duration
			distance := workout.Cardio.Distance
			// distance zero only occurs on legacy data, validation
			// rejects it on writes; pace stays a defined zero there
			pace := 0.0
			if distance > 0 {
				pace = round2(duration / distance)
			}
			point.Duration = &duration
			point.Distance = &distance
			point.DistanceUnit = workout.Cardio.DistanceUnit
			point.Pace = &pace
		}

		points = append(points, point)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
	return points
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
