package helpers

import (
	"sort"
	"time"

	"golang-workoutbackend/models"
)

// WorkoutCalendar groups workouts by calendar day for the day-by-day
// browsing view. Days maps YYYY-MM-DD to the workouts of that day in
// the order they were passed in; Dates lists the distinct days, newest
// first, for the has-workout calendar indicators; Categories lists the
// distinct categories per day for the category dots.
type WorkoutCalendar struct {
	Days       map[string][]models.Workout `json:"days"`
	Dates      []string                    `json:"dates"`
	Categories map[string][]string         `json:"categories"`
}

// GroupWorkoutsByDate partitions workouts by the calendar date of their
// createdAt in loc. Every workout lands in exactly one bucket.
func GroupWorkoutsByDate(workouts []models.Workout, loc *time.Location) WorkoutCalendar {
	if loc == nil {
		loc = time.Local
	}

	calendar := WorkoutCalendar{
		Days:       make(map[string][]models.Workout),
		Dates:      make([]string, 0),
		Categories: make(map[string][]string),
	}

	seen := make(map[string]map[string]bool)
	for _, workout := range workouts {
		day := workout.CreatedAt.In(loc).Format("2006-01-02")
		calendar.Days[day] = append(calendar.Days[day], workout)

		if seen[day] == nil {
			seen[day] = make(map[string]bool)
		}
		if !seen[day][workout.Category] {
			seen[day][workout.Category] = true
			calendar.Categories[day] = append(calendar.Categories[day], workout.Category)
		}
	}

	for day := range calendar.Days {
		calendar.Dates = append(calendar.Dates, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(calendar.Dates)))

	return calendar
}
