package workouts

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/live"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/metrics"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, userID int64, w Workout) (*Workout, error)
	Get(ctx context.Context, userID, id int64) (*Workout, error)
	List(ctx context.Context, userID int64) ([]Workout, error)
	Update(ctx context.Context, userID int64, w Workout) error
	UpdateExercises(ctx context.Context, userID, id int64, exercises []Exercise) error
	Delete(ctx context.Context, userID, id int64) error
	AddLog(ctx context.Context, userID int64, l ExerciseLog) (*ExerciseLog, error)
	ListLogs(ctx context.Context, userID int64, from, to *calc.Date) ([]ExerciseLog, error)
}

type changeNotifier interface {
	Notify(ctx context.Context, userID int64, kind live.Kind)
}

// SaveRequest carries the workout editor state. Nil meta fields are left unchanged on update.
type SaveRequest struct {
	Name       *string `json:"name"`
	ImageURL   *string `json:"imageUrl"`
	Difficulty *int    `json:"difficulty"`
	Rows       []Row   `json:"rows"`
}

type ToggleResult struct {
	Workout *Workout     `json:"workout"`
	Log     *ExerciseLog `json:"log,omitempty"`
}

type ServiceParams struct {
	DoneExpiry time.Duration
	Location   *time.Location
	NowFunc    func() time.Time
	NewSuperID func() string
}

type Service struct {
	repo           workoutsRepo
	notifier       changeNotifier
	metricsManager *metrics.Manager
	doneExpiry     time.Duration
	loc            *time.Location
	nowFunc        func() time.Time
	newSuperID     func() string
}

func NewService(repo workoutsRepo, notifier changeNotifier, metricsManager *metrics.Manager, params ServiceParams) *Service {
	s := &Service{
		repo:           repo,
		notifier:       notifier,
		metricsManager: metricsManager,
		doneExpiry:     params.DoneExpiry,
		loc:            params.Location,
		nowFunc:        params.NowFunc,
		newSuperID:     params.NewSuperID,
	}
	if s.doneExpiry <= 0 {
		s.doneExpiry = DefaultDoneExpiry
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.nowFunc == nil {
		s.nowFunc = time.Now
	}
	if s.newSuperID == nil {
		s.newSuperID = NewSuperID
	}
	return s
}

func validateMeta(name string, difficulty int) error {
	if name == "" {
		return errs.Validation("name", "required")
	}
	if difficulty < 0 || difficulty > MaxDifficulty {
		return errs.Validation("difficulty", fmt.Sprintf("must be between 0 and %d", MaxDifficulty))
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID int64, req SaveRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w := Workout{Exercises: Flatten(req.Rows, nil, s.newSuperID)}
	if req.Name != nil {
		w.Name = strings.TrimSpace(*req.Name)
	}
	if req.ImageURL != nil {
		w.ImageURL = *req.ImageURL
	}
	if req.Difficulty != nil {
		w.Difficulty = *req.Difficulty
	}
	if err := validateMeta(w.Name, w.Difficulty); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, userID, w)
	if err != nil {
		return nil, errs.Collaborator("create workout", err)
	}

	s.notifier.Notify(ctx, userID, live.KindWorkouts)
	return created, nil
}

// expire resets stale done flags of w and writes them back.
func (s *Service) expire(ctx context.Context, userID int64, w *Workout) error {
	exercises, changed := ExpireDone(w.Exercises, s.nowFunc(), s.doneExpiry)
	if !changed {
		return nil
	}
	if err := s.repo.UpdateExercises(ctx, userID, w.ID, exercises); err != nil {
		return errs.Collaborator("reset expired done flags", err)
	}

	resets := 0
	for i := range exercises {
		if w.Exercises[i].Done && !exercises[i].Done {
			resets++
		}
	}
	log.Debugf("workout %d: reset %d expired done flags", w.ID, resets)
	if s.metricsManager != nil {
		s.metricsManager.CounterDoneResets.Add(float64(resets))
	}

	w.Exercises = exercises
	s.notifier.Notify(ctx, userID, live.KindWorkouts)
	return nil
}

// Get loads a workout and applies the done auto-expiry.
func (s *Service) Get(ctx context.Context, userID, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, errs.Collaborator("get workout", err)
	}
	if err := s.expire(ctx, userID, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) List(ctx context.Context, userID int64) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, errs.Collaborator("list workouts", err)
	}
	for i := range workouts {
		if err := s.expire(ctx, userID, &workouts[i]); err != nil {
			return nil, err
		}
	}
	if workouts == nil {
		workouts = []Workout{}
	}
	return workouts, nil
}

func (s *Service) Rows(ctx context.Context, userID, id int64) ([]Row, error) {
	w, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return Inflate(w.Exercises), nil
}

// Update replaces the exercises with the flattened editor rows. Done state
// is carried over from the stored exercises by position.
func (s *Service) Update(ctx context.Context, userID, id int64, req SaveRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		w.Name = strings.TrimSpace(*req.Name)
	}
	if req.ImageURL != nil {
		w.ImageURL = *req.ImageURL
	}
	if req.Difficulty != nil {
		w.Difficulty = *req.Difficulty
	}
	if err := validateMeta(w.Name, w.Difficulty); err != nil {
		return nil, err
	}
	if req.Rows != nil {
		w.Exercises = Flatten(req.Rows, w.Exercises, s.newSuperID)
	}

	if err := s.repo.Update(ctx, userID, *w); err != nil {
		return nil, errs.Collaborator("update workout", err)
	}

	s.notifier.Notify(ctx, userID, live.KindWorkouts)
	return w, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return errs.Collaborator("delete workout", err)
	}
	s.notifier.Notify(ctx, userID, live.KindWorkouts)
	return nil
}

// ToggleDone flips the done flag of one exercise. When the exercise becomes
// done, a log is written once the workout update has been stored.
func (s *Service) ToggleDone(ctx context.Context, userID, id int64, index int) (_ *ToggleResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(w.Exercises) {
		return nil, fmt.Errorf("exercise %d of workout %d: %w", index, id, errs.ErrNotFound)
	}

	now := s.nowFunc()
	exercises, newlyDone := ToggleDone(w.Exercises, index, now)
	if err := s.repo.UpdateExercises(ctx, userID, id, exercises); err != nil {
		return nil, errs.Collaborator("toggle done", err)
	}
	w.Exercises = exercises
	s.notifier.Notify(ctx, userID, live.KindWorkouts)

	result := &ToggleResult{Workout: w}
	if !newlyDone {
		return result, nil
	}

	added, err := s.repo.AddLog(ctx, userID, NewExerciseLog(*w, index, now, s.loc))
	if err != nil {
		return nil, errs.Collaborator("add exercise log", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterExerciseLogs.Inc()
	}
	s.notifier.Notify(ctx, userID, live.KindExerciseLogs)

	result.Log = added
	return result, nil
}

// Logs returns exercise logs performed within [from, to]; nil bounds are open.
func (s *Service) Logs(ctx context.Context, userID int64, from, to *calc.Date) ([]ExerciseLog, error) {
	if from != nil && to != nil && to.Before(from.Time) {
		return nil, errs.Validation("to", "before from")
	}
	logs, err := s.repo.ListLogs(ctx, userID, from, to)
	if err != nil {
		return nil, errs.Collaborator("list exercise logs", err)
	}
	if logs == nil {
		logs = []ExerciseLog{}
	}
	return logs, nil
}
