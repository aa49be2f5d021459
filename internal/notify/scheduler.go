package notify

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/metrics"
)

type entry struct {
	reminder Reminder
	timer    *time.Timer   // once
	schedule cron.Schedule // daily
}

type SchedulerParams struct {
	Location *time.Location
	NowFunc  func() time.Time
}

// Scheduler keeps reminders in memory. One-shot reminders run on their own
// timer; daily ones share a cron instance which is rebuilt on cancel, since
// cron v1 cannot remove entries.
type Scheduler struct {
	mu        sync.Mutex
	cron      *cron.Cron
	running   bool
	reminders map[string]*entry
	fired     map[int64][]Fired

	sender         Sender
	metricsManager *metrics.Manager
	loc            *time.Location
	nowFunc        func() time.Time
}

func NewScheduler(sender Sender, metricsManager *metrics.Manager, params SchedulerParams) *Scheduler {
	if params.Location == nil {
		params.Location = time.Local
	}
	if params.NowFunc == nil {
		params.NowFunc = time.Now
	}
	return &Scheduler{
		cron:           cron.NewWithLocation(params.Location),
		reminders:      make(map[string]*entry),
		fired:          make(map[int64][]Fired),
		sender:         sender,
		metricsManager: metricsManager,
		loc:            params.Location,
		nowFunc:        params.NowFunc,
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
}

// Stop halts the cron loop and all pending one-shot timers.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.cron.Stop()
		s.running = false
	}
	for id, e := range s.reminders {
		if e.timer != nil {
			e.timer.Stop()
			delete(s.reminders, id)
		}
	}
	s.updateGauge()
}

// ScheduleOnce fires a reminder after the given number of minutes.
func (s *Scheduler) ScheduleOnce(ctx context.Context, userID int64, req OnceRequest) (*Reminder, error) {
	if req.Minutes < 1 || req.Minutes > maxOnceMinutes {
		return nil, errs.Validation("minutes", fmt.Sprintf("must be between 1 and %d", maxOnceMinutes))
	}
	return s.ScheduleAfter(ctx, userID, time.Duration(req.Minutes)*time.Minute, req.Message)
}

func (s *Scheduler) ScheduleAfter(_ context.Context, userID int64, after time.Duration, message string) (*Reminder, error) {
	if after <= 0 {
		return nil, errs.Validation("minutes", "must be positive")
	}
	message, err := normalizeMessage(message)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc()
	r := Reminder{
		ID:       uuid.NewString(),
		UserID:   userID,
		Schedule: ScheduleOnce,
		Message:  message,
		NextAt:   now.Add(after).In(s.loc),
		Created:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.ID
	s.reminders[id] = &entry{
		reminder: r,
		timer:    time.AfterFunc(after, func() { s.fire(id) }),
	}
	s.updateGauge()

	log.Debugf("reminder %s scheduled for user %d at %s", id, userID, r.NextAt)
	return &r, nil
}

// ScheduleDaily fires a reminder every day at hour:minute in the scheduler's location.
func (s *Scheduler) ScheduleDaily(_ context.Context, userID int64, req DailyRequest) (*Reminder, error) {
	if req.Hour < 0 || req.Hour > 23 {
		return nil, errs.Validation("hour", "must be between 0 and 23")
	}
	if req.Minute < 0 || req.Minute > 59 {
		return nil, errs.Validation("minute", "must be between 0 and 59")
	}
	message, err := normalizeMessage(req.Message)
	if err != nil {
		return nil, err
	}

	schedule, err := cron.Parse(fmt.Sprintf("0 %d %d * * *", req.Minute, req.Hour))
	if err != nil {
		return nil, fmt.Errorf("parse daily schedule: %w", err)
	}

	hour, minute := req.Hour, req.Minute
	now := s.nowFunc()
	r := Reminder{
		ID:       uuid.NewString(),
		UserID:   userID,
		Schedule: ScheduleDaily,
		Message:  message,
		Hour:     &hour,
		Minute:   &minute,
		NextAt:   schedule.Next(now.In(s.loc)),
		Created:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.ID
	s.reminders[id] = &entry{reminder: r, schedule: schedule}
	s.cron.Schedule(schedule, s.dailyJob(id))
	s.updateGauge()

	log.Debugf("daily reminder %s scheduled for user %d at %02d:%02d", id, userID, hour, minute)
	return &r, nil
}

func (s *Scheduler) dailyJob(id string) cron.FuncJob {
	return func() { s.fire(id) }
}

// Cancel removes a reminder of the user. Unknown ids and reminders of other
// users are reported as not found.
func (s *Scheduler) Cancel(_ context.Context, userID int64, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.reminders[id]
	if !ok || e.reminder.UserID != userID {
		return errs.ErrNotFound
	}
	delete(s.reminders, id)

	if e.timer != nil {
		e.timer.Stop()
	} else {
		s.rebuildCron()
	}
	s.updateGauge()

	log.Debugf("reminder %s cancelled", id)
	return nil
}

// must hold s.mu
func (s *Scheduler) rebuildCron() {
	if s.running {
		s.cron.Stop()
	}
	s.cron = cron.NewWithLocation(s.loc)
	for id, e := range s.reminders {
		if e.schedule != nil {
			s.cron.Schedule(e.schedule, s.dailyJob(id))
		}
	}
	if s.running {
		s.cron.Start()
	}
}

// List returns the user's pending reminders, soonest first.
func (s *Scheduler) List(_ context.Context, userID int64) []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc().In(s.loc)
	list := []Reminder{}
	for _, e := range s.reminders {
		if e.reminder.UserID != userID {
			continue
		}
		r := e.reminder
		if e.schedule != nil {
			r.NextAt = e.schedule.Next(now)
		}
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].NextAt.Equal(list[j].NextAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].NextAt.Before(list[j].NextAt)
	})
	return list
}

func (s *Scheduler) Snapshot(ctx context.Context, userID int64) Snapshot {
	scheduled := s.List(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	fired := make([]Fired, len(s.fired[userID]))
	copy(fired, s.fired[userID])

	return Snapshot{Scheduled: scheduled, Fired: fired}
}

func (s *Scheduler) fire(id string) {
	s.mu.Lock()
	e, ok := s.reminders[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	r := e.reminder
	if r.Schedule == ScheduleOnce {
		delete(s.reminders, id)
		s.updateGauge()
	}

	history := append(s.fired[r.UserID], Fired{ReminderID: id, Message: r.Message, At: s.nowFunc()})
	if len(history) > firedHistorySize {
		history = history[len(history)-firedHistorySize:]
	}
	s.fired[r.UserID] = history
	s.mu.Unlock()

	if s.metricsManager != nil {
		s.metricsManager.CounterRemindersFired.Inc()
	}
	if err := s.sender.Send(context.Background(), r); err != nil {
		log.Errorf("send reminder %s to user %d: %s", id, r.UserID, err)
	}
}

// must hold s.mu
func (s *Scheduler) updateGauge() {
	if s.metricsManager != nil {
		s.metricsManager.GaugeScheduledReminders.Set(float64(len(s.reminders)))
	}
}
