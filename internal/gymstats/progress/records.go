package progress

import (
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

type Lift string

const (
	LiftBench    Lift = "bench"
	LiftSquat    Lift = "squat"
	LiftDeadlift Lift = "deadlift"
)

var AllLifts = []Lift{LiftBench, LiftSquat, LiftDeadlift}

func (l Lift) Valid() bool {
	switch l {
	case LiftBench, LiftSquat, LiftDeadlift:
		return true
	default:
		return false
	}
}

type LiftSet struct {
	ID        int64     `json:"id"`
	Lift      Lift      `json:"lift"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	Date      calc.Date `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// Run is a timed 5K run. Older records carry only the textual Time.
type Run struct {
	ID        int64     `json:"id"`
	Seconds   *int      `json:"seconds,omitempty"`
	Time      string    `json:"time,omitempty"`
	Date      calc.Date `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// ElapsedSeconds prefers positive stored seconds and falls back to parsing Time.
func (r Run) ElapsedSeconds() int {
	if r.Seconds != nil && *r.Seconds > 0 {
		return *r.Seconds
	}
	return calc.ParseMmSs(r.Time)
}

// HeartRateSession holds minutes spent per heart-rate zone.
type HeartRateSession struct {
	ID        int64     `json:"id"`
	Z1        int       `json:"z1"`
	Z2        int       `json:"z2"`
	Z3        int       `json:"z3"`
	Z4        int       `json:"z4"`
	Z5        int       `json:"z5"`
	Hi        *int      `json:"hi,omitempty"`
	Date      calc.Date `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// HighZoneMinutes is the stored hi value, or z3+z4+z5 when it is missing.
func (h HeartRateSession) HighZoneMinutes() int {
	if h.Hi != nil {
		return *h.Hi
	}
	return h.Z3 + h.Z4 + h.Z5
}
