package progress

import (
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

type LiftBest struct {
	Lift   Lift      `json:"lift"`
	Value  float64   `json:"value"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	Date   calc.Date `json:"date"`
}

type RunBest struct {
	Seconds   int       `json:"seconds"`
	Formatted string    `json:"formatted"`
	Date      calc.Date `json:"date"`
}

type HeartRateBest struct {
	HighZoneMinutes int       `json:"highZoneMinutes"`
	Date            calc.Date `json:"date"`
}

type PersonalBests struct {
	Lifts     map[Lift]*LiftBest `json:"lifts"`
	FiveK     *RunBest           `json:"fiveK"`
	HeartRate *HeartRateBest     `json:"heartRate"`
}

// BestOneRepMax returns the set with the highest estimated 1RM, nil for no sets.
// Ties keep the earliest set in input order.
func BestOneRepMax(sets []LiftSet) *LiftBest {
	var (
		best    *LiftBest
		bestRaw float64
	)
	for _, s := range sets {
		est := calc.EstimatedOneRepMax(s.Weight, s.Reps)
		if best != nil && est <= bestRaw {
			continue
		}
		bestRaw = est
		best = &LiftBest{
			Lift:   s.Lift,
			Value:  calc.Round1(est),
			Weight: s.Weight,
			Reps:   s.Reps,
			Date:   s.Date,
		}
	}
	return best
}

// BestFiveK returns the fastest run. Runs without a usable time are ignored.
func BestFiveK(runs []Run) *RunBest {
	var best *RunBest
	for _, r := range runs {
		seconds := r.ElapsedSeconds()
		if seconds <= 0 {
			continue
		}
		if best == nil || seconds < best.Seconds {
			best = &RunBest{
				Seconds:   seconds,
				Formatted: calc.FormatSecondsAsMmSs(float64(seconds)),
				Date:      r.Date,
			}
		}
	}
	return best
}

// BestHeartRate returns the session with the most high-zone minutes.
func BestHeartRate(sessions []HeartRateSession) *HeartRateBest {
	var best *HeartRateBest
	for _, s := range sessions {
		hi := s.HighZoneMinutes()
		if best == nil || hi > best.HighZoneMinutes {
			best = &HeartRateBest{HighZoneMinutes: hi, Date: s.Date}
		}
	}
	return best
}

func Bests(sets []LiftSet, runs []Run, sessions []HeartRateSession) PersonalBests {
	pbs := PersonalBests{
		Lifts:     make(map[Lift]*LiftBest, len(AllLifts)),
		FiveK:     BestFiveK(runs),
		HeartRate: BestHeartRate(sessions),
	}
	for _, lift := range AllLifts {
		pbs.Lifts[lift] = BestOneRepMax(FilterByLift(sets, lift))
	}
	return pbs
}
