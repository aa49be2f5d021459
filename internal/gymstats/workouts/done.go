package workouts

import (
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

const DefaultDoneExpiry = 8 * time.Hour

// ExpireDone clears done flags set at least threshold ago. It returns a new
// slice and whether anything changed; the input is left untouched.
func ExpireDone(exercises []Exercise, now time.Time, threshold time.Duration) ([]Exercise, bool) {
	changed := false
	out := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		if ex.Done && ex.DoneAt != nil && now.Sub(*ex.DoneAt) >= threshold {
			ex.Done = false
			ex.DoneAt = nil
			changed = true
		}
		out[i] = ex
	}
	return out, changed
}

// ToggleDone flips the done flag of exercises[index] and reports whether it
// became done. Unmarking keeps existing logs.
func ToggleDone(exercises []Exercise, index int, now time.Time) ([]Exercise, bool) {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)

	ex := &out[index]
	if ex.Done {
		ex.Done = false
		ex.DoneAt = nil
		return out, false
	}
	doneAt := now
	ex.Done = true
	ex.DoneAt = &doneAt
	return out, true
}

// NewExerciseLog builds the completion log of workout.Exercises[index].
// The performed date is the calendar day of now in loc.
func NewExerciseLog(workout Workout, index int, now time.Time, loc *time.Location) ExerciseLog {
	if loc == nil {
		loc = time.Local
	}
	ex := workout.Exercises[index]
	group := ex.Group
	if group == "" {
		group = DefaultGroup
	}
	idx := index
	return ExerciseLog{
		WorkoutID:       workout.ID,
		WorkoutName:     workout.Name,
		ExerciseIndex:   &idx,
		ExerciseName:    ex.Name,
		Group:           group,
		Weight:          ex.Weight,
		Sets:            ex.Sets,
		Reps:            ex.Reps,
		Minutes:         ex.Minutes,
		PerformedAt:     now,
		PerformedAtDate: calc.DateOf(now.In(loc)),
	}
}
