package stats

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/workouts"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type workoutsSource interface {
	List(ctx context.Context, userID int64) ([]workouts.Workout, error)
	Logs(ctx context.Context, userID int64, from, to *calc.Date) ([]workouts.ExerciseLog, error)
}

type Response struct {
	Period Period `json:"period"`
	Range
	PeriodStats
	AvgExercisesPerSession float64   `json:"avgExercisesPerSession"`
	VolumePerSession       float64   `json:"volumePerSession"`
	Intensity              Intensity `json:"intensity"`
	StrengthPercent        float64   `json:"strengthPercent"`
	ConditioningPercent    float64   `json:"conditioningPercent"`
	Tips                   []Tip     `json:"tips"`
}

type Handler struct {
	source  workoutsSource
	loc     *time.Location
	nowFunc func() time.Time
}

func NewHandler(source workoutsSource, loc *time.Location, nowFunc func() time.Time) *Handler {
	if loc == nil {
		loc = time.Local
	}
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &Handler{
		source:  source,
		loc:     loc,
		nowFunc: nowFunc,
	}
}

// Compute aggregates the period containing date.
func (handler *Handler) Compute(ctx context.Context, userID int64, period Period, date time.Time) (*Response, error) {
	periodRange, err := PeriodRange(period, date)
	if err != nil {
		return nil, errs.Validation("period", err.Error())
	}

	logs, err := handler.source.Logs(ctx, userID, &periodRange.From, &periodRange.To)
	if err != nil {
		return nil, errs.Collaborator("list exercise logs", err)
	}
	list, err := handler.source.List(ctx, userID)
	if err != nil {
		return nil, errs.Collaborator("list workouts", err)
	}

	defs := make(map[int64]workouts.Workout, len(list))
	for _, w := range list {
		defs[w.ID] = w
	}

	stats := Aggregate(logs, defs)
	if stats.SkippedRecords > 0 {
		log.Debugf("stats for user %d: skipped %d unresolved logs", userID, stats.SkippedRecords)
	}
	strength, conditioning := stats.Split()

	return &Response{
		Period:                 period,
		Range:                  periodRange,
		PeriodStats:            stats,
		AvgExercisesPerSession: stats.AvgExercisesPerSession(),
		VolumePerSession:       stats.VolumePerSession(),
		Intensity:              stats.Intensity(),
		StrengthPercent:        strength,
		ConditioningPercent:    conditioning,
		Tips:                   SplitTips(stats, period),
	}, nil
}

// HandleStats GET /stats?period=week|month&date=YYYY-MM-DD
func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	period := Period(r.URL.Query().Get("period"))
	if period == "" {
		period = PeriodWeek
	}

	date := handler.nowFunc().In(handler.loc)
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := calc.ParseISODate(dateParam, handler.loc)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	resp, err := handler.Compute(ctx, userID, period, date)
	if err != nil {
		log.Errorf("failed to compute [%s] stats for user %d: %s", period, userID, err)
		errs.WriteHTTP(w, err, "failed to compute stats")
		return
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}
