package notify

import (
	"strings"
	"time"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
)

const (
	DefaultMessage   = "Time to train!"
	maxMessageLength = 200
	maxOnceMinutes   = 7 * 24 * 60
	firedHistorySize = 20
)

type Schedule string

const (
	ScheduleOnce  Schedule = "once"
	ScheduleDaily Schedule = "daily"
)

type Reminder struct {
	ID       string    `json:"id"`
	UserID   int64     `json:"-"`
	Schedule Schedule  `json:"schedule"`
	Message  string    `json:"message"`
	Hour     *int      `json:"hour,omitempty"`
	Minute   *int      `json:"minute,omitempty"`
	NextAt   time.Time `json:"nextAt"`
	Created  time.Time `json:"createdAt"`
}

type Fired struct {
	ReminderID string    `json:"reminderId"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}

// Snapshot is what live subscribers of the reminders kind receive.
type Snapshot struct {
	Scheduled []Reminder `json:"scheduled"`
	Fired     []Fired    `json:"fired"`
}

type OnceRequest struct {
	Minutes int    `json:"minutes"`
	Message string `json:"message"`
}

type DailyRequest struct {
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Message string `json:"message"`
}

func normalizeMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return DefaultMessage, nil
	}
	if len(message) > maxMessageLength {
		return "", errs.Validation("message", "too long")
	}
	return message, nil
}
