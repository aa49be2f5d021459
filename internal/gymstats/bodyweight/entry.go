package bodyweight

import (
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

type Entry struct {
	ID        int64     `json:"id"`
	Kg        float64   `json:"kg"`
	Date      calc.Date `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddRequest accepts the current {kg, date} payload and the legacy
// {weight, dateIso} one.
type AddRequest struct {
	Kg      *float64   `json:"kg"`
	Weight  *float64   `json:"weight"`
	Date    *calc.Date `json:"date"`
	DateISO *calc.Date `json:"dateIso"`
}

type UpdateRequest struct {
	Kg   *float64   `json:"kg"`
	Date *calc.Date `json:"date"`
}

// Normalize resolves the legacy field names. A missing date falls back to today.
func (req AddRequest) Normalize(today time.Time) (Entry, error) {
	kg := req.Kg
	if kg == nil {
		kg = req.Weight
	}
	if kg == nil {
		return Entry{}, errs.Validation("kg", "missing")
	}
	if *kg <= 0 {
		return Entry{}, errs.Validation("kg", "must be positive")
	}

	date := calc.DateOf(today)
	switch {
	case req.Date != nil && !req.Date.IsZero():
		date = *req.Date
	case req.DateISO != nil && !req.DateISO.IsZero():
		date = *req.DateISO
	}

	return Entry{Kg: *kg, Date: date}, nil
}

func (req UpdateRequest) Validate() error {
	if req.Kg == nil && req.Date == nil {
		return errs.Validation("", "nothing to update")
	}
	if req.Kg != nil && *req.Kg <= 0 {
		return errs.Validation("kg", "must be positive")
	}
	if req.Date != nil && req.Date.IsZero() {
		return errs.Validation("date", "invalid")
	}
	return nil
}
