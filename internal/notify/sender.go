package notify

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/live"
)

// Sender delivers a reminder that came due.
type Sender interface {
	Send(ctx context.Context, r Reminder) error
}

type changeNotifier interface {
	Notify(ctx context.Context, userID int64, kind live.Kind)
}

// LiveSender logs the reminder and wakes the user's reminder streams, which
// pick it up from the scheduler's fired history.
type LiveSender struct {
	notifier changeNotifier
}

func NewLiveSender(notifier changeNotifier) *LiveSender {
	return &LiveSender{
		notifier: notifier,
	}
}

func (s *LiveSender) Send(ctx context.Context, r Reminder) error {
	log.Infof("reminder [%s] for user %d: %s", r.Schedule, r.UserID, r.Message)
	s.notifier.Notify(ctx, r.UserID, live.KindReminders)
	return nil
}
