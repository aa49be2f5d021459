package progress

import (
	"sort"
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

var TrendWindows = map[int]bool{30: true, 90: true, 365: true}

const DefaultTrendWindow = 90

type WeeklyVolumePoint struct {
	WeekStart string  `json:"weekStart"`
	Volume    float64 `json:"volume"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// WeeklyVolume sums weight*reps per ISO week. Sets of different lifts may be mixed.
// Weeks without sets are not emitted.
func WeeklyVolume(sets []LiftSet) []WeeklyVolumePoint {
	byWeek := make(map[string]float64)
	for _, s := range sets {
		byWeek[calc.WeekKey(s.Date.Time)] += s.Weight * float64(s.Reps)
	}

	points := make([]WeeklyVolumePoint, 0, len(byWeek))
	for week, volume := range byWeek {
		points = append(points, WeeklyVolumePoint{WeekStart: week, Volume: volume})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].WeekStart < points[j].WeekStart
	})

	return points
}

// Trend returns the best estimated 1RM per day for the last windowDays days
// (today included), sorted by date. sets should belong to a single lift.
func Trend(sets []LiftSet, windowDays int, today time.Time) []TrendPoint {
	if windowDays < 1 {
		windowDays = 1
	}
	cutoff := calc.ToISODate(calc.StartOfDay(today).AddDate(0, 0, -(windowDays - 1)))

	var points []TrendPoint
	dayIndex := make(map[string]int)
	for _, s := range sets {
		day := s.Date.String()
		if day < cutoff {
			continue
		}

		value := calc.Round1(calc.EstimatedOneRepMax(s.Weight, s.Reps))
		idx, seen := dayIndex[day]
		if !seen {
			dayIndex[day] = len(points)
			points = append(points, TrendPoint{Date: day, Value: value})
			continue
		}
		// equal values keep the entry seen first
		if value > points[idx].Value {
			points[idx].Value = value
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	if points == nil {
		return []TrendPoint{}
	}
	return points
}

func FilterByLift(sets []LiftSet, lift Lift) []LiftSet {
	var filtered []LiftSet
	for _, s := range sets {
		if s.Lift == lift {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
