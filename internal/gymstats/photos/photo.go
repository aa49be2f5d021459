package photos

import (
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
)

// Photo is the metadata of a stored progress photo. The image bytes are
// served separately.
type Photo struct {
	ID          string    `json:"id"`
	Caption     string    `json:"caption"`
	Date        calc.Date `json:"date"`
	ContentType string    `json:"contentType"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	ApproxBytes int       `json:"approxBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}
