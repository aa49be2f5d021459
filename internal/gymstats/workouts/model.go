package workouts

import (
	"strings"
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

const (
	DefaultGroup  = "Other"
	MaxDifficulty = 5
)

// Exercise is one entry of a workout. Two adjacent exercises sharing a
// non-nil SuperID form a superset pair.
type Exercise struct {
	Name    string     `json:"name"`
	Group   string     `json:"group"`
	Sets    *int       `json:"sets"`
	Reps    *int       `json:"reps"`
	Minutes *int       `json:"minutes"`
	Weight  *float64   `json:"weight"`
	SuperID *string    `json:"superId"`
	Done    bool       `json:"done"`
	DoneAt  *time.Time `json:"doneAt"`
}

type Workout struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	ImageURL   string     `json:"imageUrl"`
	Difficulty int        `json:"difficulty"`
	Exercises  []Exercise `json:"exercises"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// ExerciseLog records one completion. Logs are append-only and are kept
// when the exercise is unmarked, expires, or its workout is edited.
type ExerciseLog struct {
	ID              int64     `json:"id"`
	WorkoutID       int64     `json:"workoutId"`
	WorkoutName     string    `json:"workoutName"`
	ExerciseIndex   *int      `json:"exerciseIndex"`
	ExerciseName    string    `json:"exerciseName"`
	Group           string    `json:"group"`
	Weight          *float64  `json:"weight"`
	Sets            *int      `json:"sets"`
	Reps            *int      `json:"reps"`
	Minutes         *int      `json:"minutes"`
	PerformedAt     time.Time `json:"performedAt"`
	PerformedAtDate calc.Date `json:"performedAtDate"`
}

// IsConditioning reports whether a group counts as conditioning work.
func IsConditioning(group string) bool {
	switch strings.ToLower(group) {
	case "cardio", "mobility":
		return true
	default:
		return false
	}
}
