package stats

import (
	"sort"
	"strings"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/workouts"
)

type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

const (
	mediumVolumePerSession = 5000
	highVolumePerSession   = 15000
)

type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PeriodStats summarizes exercise completions over a date range.
type PeriodStats struct {
	SessionCount      int          `json:"sessionCount"`
	TotalExercises    int          `json:"totalExercises"`
	Volume            float64      `json:"volume"`
	MuscleGroups      []GroupCount `json:"muscleGroups"`
	StrengthCount     int          `json:"strengthCount"`
	ConditioningCount int          `json:"conditioningCount"`
	// SkippedRecords counts logs whose workout or exercise no longer exists.
	SkippedRecords int `json:"skippedRecords"`
}

type sessionKey struct {
	workoutID int64
	day       string
}

func orOne(v *int) float64 {
	if v == nil || *v == 0 {
		return 1
	}
	return float64(*v)
}

// Aggregate computes period stats of logs, resolving each log against the
// current workout definitions. Logs that no longer resolve are skipped.
func Aggregate(logs []workouts.ExerciseLog, defs map[int64]workouts.Workout) PeriodStats {
	var (
		stats      PeriodStats
		sessions   = make(map[sessionKey]struct{})
		groupCount = make(map[string]int)
		groupOrder []string
	)

	for _, l := range logs {
		w, ok := defs[l.WorkoutID]
		if !ok {
			stats.SkippedRecords++
			continue
		}
		index := 0
		if l.ExerciseIndex != nil {
			index = *l.ExerciseIndex
		}
		if index < 0 || index >= len(w.Exercises) {
			stats.SkippedRecords++
			continue
		}
		ex := w.Exercises[index]

		if !l.PerformedAtDate.IsZero() {
			sessions[sessionKey{workoutID: l.WorkoutID, day: l.PerformedAtDate.String()}] = struct{}{}
		}
		stats.TotalExercises++

		weight := 0.0
		if ex.Weight != nil {
			weight = *ex.Weight
		}
		if v := weight * orOne(ex.Reps) * orOne(ex.Sets); v > 0 {
			stats.Volume += v
		}

		group := ex.Group
		if group == "" {
			group = workouts.DefaultGroup
		}
		if _, seen := groupCount[group]; !seen {
			groupOrder = append(groupOrder, group)
		}
		groupCount[group]++

		if workouts.IsConditioning(group) {
			stats.ConditioningCount++
		} else {
			stats.StrengthCount++
		}
	}

	stats.SessionCount = len(sessions)
	stats.MuscleGroups = make([]GroupCount, 0, len(groupOrder))
	for _, g := range groupOrder {
		stats.MuscleGroups = append(stats.MuscleGroups, GroupCount{Name: g, Count: groupCount[g]})
	}
	sort.SliceStable(stats.MuscleGroups, func(i, j int) bool {
		return stats.MuscleGroups[i].Count > stats.MuscleGroups[j].Count
	})

	return stats
}

func (s PeriodStats) AvgExercisesPerSession() float64 {
	if s.SessionCount == 0 {
		return 0
	}
	return float64(s.TotalExercises) / float64(s.SessionCount)
}

func (s PeriodStats) VolumePerSession() float64 {
	if s.SessionCount == 0 {
		return 0
	}
	return s.Volume / float64(s.SessionCount)
}

func (s PeriodStats) Intensity() Intensity {
	if s.Volume == 0 || s.SessionCount == 0 {
		return IntensityLow
	}
	switch perSession := s.VolumePerSession(); {
	case perSession < mediumVolumePerSession:
		return IntensityLow
	case perSession < highVolumePerSession:
		return IntensityMedium
	default:
		return IntensityHigh
	}
}

// Split returns strength and conditioning shares in percent.
func (s PeriodStats) Split() (strength, conditioning float64) {
	total := s.StrengthCount + s.ConditioningCount
	if total == 0 {
		total = 1
	}
	return float64(s.StrengthCount) / float64(total) * 100, float64(s.ConditioningCount) / float64(total) * 100
}

func (s PeriodStats) groupHits(name string) int {
	for _, g := range s.MuscleGroups {
		if strings.EqualFold(g.Name, name) {
			return g.Count
		}
	}
	return 0
}
