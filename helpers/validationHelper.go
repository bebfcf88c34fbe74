package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang-workoutbackend/models"
)

// Number accepts both JSON numbers and numeric strings, since the
// workout form posts its inputs as strings.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = Number(f)
	return nil
}

// WeightInput tells a missing weight apart from an explicit zero: an
// absent field, null, or a blanked-out form input ("") all count as not
// filled in, while "0" is a real value for bodyweight exercises.
type WeightInput struct {
	Value   float64
	Present bool
}

func (w *WeightInput) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		w.Present = false
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	w.Value = f
	w.Present = true
	return nil
}

// SetInput is one submitted set.
type SetInput struct {
	SetNumber Number      `json:"setNumber"`
	Reps      Number      `json:"reps"`
	Weight    WeightInput `json:"weight"`
}

type CardioInput struct {
	Duration     Number `json:"duration"`
	Distance     Number `json:"distance"`
	DistanceUnit string `json:"distanceUnit"`
}

// WorkoutInput is the raw submitted workout payload, before validation
// and normalization.
type WorkoutInput struct {
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	WorkoutType  string       `json:"workoutType"`
	IsBodyweight *bool        `json:"isBodyweight"`
	Sets         []SetInput   `json:"sets"`
	Cardio       *CardioInput `json:"cardio"`
	CreatedAt    string       `json:"createdAt"`
}

// ValidationError carries every offending field path so the client can
// highlight all of them at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Error: one or more fields are missing or invalid"
}

// ValidateWorkout checks a submitted payload against the rules of its
// workout type and returns the normalized workout, or a ValidationError
// listing every violation. It is pure: the caller supplies the time
// used when no createdAt was submitted.
//
// For weights workouts the weight threshold depends on the bodyweight
// flag: bodyweight exercises accept zero, everything else requires a
// strictly positive weight. Negative weights are always rejected.
func ValidateWorkout(input WorkoutInput, now time.Time) (models.Workout, *ValidationError) {
	var fields []string

	title := strings.TrimSpace(input.Title)
	if title == "" {
		fields = append(fields, "title")
	}
	if input.Category == "" || !models.IsValidCategory(input.Category) {
		fields = append(fields, "category")
	}

	bodyweight := input.IsBodyweight != nil && *input.IsBodyweight

	switch input.WorkoutType {
	case models.WorkoutTypeWeights:
		if len(input.Sets) == 0 {
			fields = append(fields, "sets")
		}
		for i, set := range input.Sets {
			if set.Reps <= 0 {
				fields = append(fields, fmt.Sprintf("sets[%d].reps", i))
			}
			switch {
			case !set.Weight.Present:
				fields = append(fields, fmt.Sprintf("sets[%d].weight", i))
			case set.Weight.Value < 0:
				fields = append(fields, fmt.Sprintf("sets[%d].weight", i))
			case set.Weight.Value == 0 && !bodyweight:
				fields = append(fields, fmt.Sprintf("sets[%d].weight", i))
			}
		}
	case models.WorkoutTypeCardio:
		if input.Cardio == nil {
			fields = append(fields, "cardio")
		} else {
			if input.Cardio.Duration <= 0 {
				fields = append(fields, "cardio.duration")
			}
			if input.Cardio.Distance <= 0 {
				fields = append(fields, "cardio.distance")
			}
			if input.Cardio.DistanceUnit != "km" && input.Cardio.DistanceUnit != "mi" {
				fields = append(fields, "cardio.distanceUnit")
			}
		}
	default:
		fields = append(fields, "workoutType")
	}

	createdAt := now
	if input.CreatedAt != "" {
		parsed, err := parseWorkoutDate(input.CreatedAt)
		if err != nil {
			fields = append(fields, "createdAt")
		} else {
			createdAt = parsed
		}
	}

	if len(fields) > 0 {
		return models.Workout{}, &ValidationError{Fields: fields}
	}

	workout := models.Workout{
		Title:        title,
		Category:     input.Category,
		WorkoutType:  input.WorkoutType,
		IsBodyweight: bodyweight,
		CreatedAt:    createdAt,
	}
	if input.WorkoutType == models.WorkoutTypeWeights {
		sets := make([]models.Set, len(input.Sets))
		for i, set := range input.Sets {
			sets[i] = models.Set{
				SetNumber: i + 1,
				Reps:      int(set.Reps),
				Weight:    set.Weight.Value,
			}
		}
		workout.Sets = sets
	} else {
		workout.Cardio = &models.Cardio{
			Duration:     float64(input.Cardio.Duration),
			Distance:     float64(input.Cardio.Distance),
			DistanceUnit: input.Cardio.DistanceUnit,
		}
	}
	return workout, nil
}

var workoutDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseWorkoutDate(value string) (time.Time, error) {
	for _, layout := range workoutDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", value)
}
