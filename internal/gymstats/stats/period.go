package stats

import (
	"fmt"
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

type Range struct {
	From calc.Date `json:"from"`
	To   calc.Date `json:"to"`
}

// PeriodRange returns the inclusive calendar range of the week (Monday to
// Sunday) or month containing date.
func PeriodRange(period Period, date time.Time) (Range, error) {
	switch period {
	case PeriodWeek:
		monday := calc.MondayOf(date)
		return Range{From: calc.DateOf(monday), To: calc.DateOf(monday.AddDate(0, 0, 6))}, nil
	case PeriodMonth:
		return Range{From: calc.DateOf(calc.StartOfMonth(date)), To: calc.DateOf(calc.EndOfMonth(date))}, nil
	default:
		return Range{}, fmt.Errorf("unknown period: %q", period)
	}
}
