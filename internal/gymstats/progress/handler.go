package progress

import (
	"context"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/live"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/metrics"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type progressRepo interface {
	AddLiftSet(ctx context.Context, userID int64, set LiftSet) (*LiftSet, error)
	ListLiftSets(ctx context.Context, userID int64, lift Lift) ([]LiftSet, error)
	DeleteLiftSet(ctx context.Context, userID, id int64) error
	AddRun(ctx context.Context, userID int64, run Run) (*Run, error)
	ListRuns(ctx context.Context, userID int64) ([]Run, error)
	DeleteRun(ctx context.Context, userID, id int64) error
	AddHeartRate(ctx context.Context, userID int64, hr HeartRateSession) (*HeartRateSession, error)
	ListHeartRate(ctx context.Context, userID int64) ([]HeartRateSession, error)
	DeleteHeartRate(ctx context.Context, userID, id int64) error
}

type changeNotifier interface {
	Notify(ctx context.Context, userID int64, kind live.Kind)
}

type AddLiftSetRequest struct {
	Lift   Lift       `json:"lift"`
	Weight float64    `json:"weight"`
	Reps   int        `json:"reps"`
	Date   *calc.Date `json:"date"`
}

// AddRunRequest carries either the elapsed seconds or a "mm:ss" / "h:mm:ss" time.
type AddRunRequest struct {
	Seconds int        `json:"seconds"`
	Time    string     `json:"time"`
	Date    *calc.Date `json:"date"`
}

type AddHeartRateRequest struct {
	Z1   int        `json:"z1"`
	Z2   int        `json:"z2"`
	Z3   int        `json:"z3"`
	Z4   int        `json:"z4"`
	Z5   int        `json:"z5"`
	Date *calc.Date `json:"date"`
}

type DeleteResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type Handler struct {
	repo           progressRepo
	notifier       changeNotifier
	metricsManager *metrics.Manager
	loc            *time.Location
	nowFunc        func() time.Time
}

func NewHandler(
	repo progressRepo,
	notifier changeNotifier,
	metricsManager *metrics.Manager,
	loc *time.Location,
	nowFunc func() time.Time,
) *Handler {
	if loc == nil {
		loc = time.Local
	}
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &Handler{
		repo:           repo,
		notifier:       notifier,
		metricsManager: metricsManager,
		loc:            loc,
		nowFunc:        nowFunc,
	}
}

func (req AddLiftSetRequest) toLiftSet() (LiftSet, error) {
	if !req.Lift.Valid() {
		return LiftSet{}, errs.Validation("lift", "must be one of bench, squat, deadlift")
	}
	if req.Weight <= 0 {
		return LiftSet{}, errs.Validation("weight", "must be positive")
	}
	if req.Reps < 1 {
		return LiftSet{}, errs.Validation("reps", "must be at least 1")
	}
	if req.Date == nil || req.Date.IsZero() {
		return LiftSet{}, errs.Validation("date", "missing")
	}
	return LiftSet{Lift: req.Lift, Weight: req.Weight, Reps: req.Reps, Date: *req.Date}, nil
}

func (req AddRunRequest) toRun() (Run, error) {
	seconds := req.Seconds
	if seconds <= 0 {
		seconds = calc.ParseMmSs(req.Time)
	}
	if seconds <= 0 {
		return Run{}, errs.Validation("time", "no time entered")
	}
	if req.Date == nil || req.Date.IsZero() {
		return Run{}, errs.Validation("date", "missing")
	}
	return Run{
		Seconds: &seconds,
		Time:    calc.FormatSecondsAsMmSs(float64(seconds)),
		Date:    *req.Date,
	}, nil
}

func (req AddHeartRateRequest) toSession() (HeartRateSession, error) {
	for i, z := range []int{req.Z1, req.Z2, req.Z3, req.Z4, req.Z5} {
		if z < 0 {
			return HeartRateSession{}, errs.Validation("z"+strconv.Itoa(i+1), "must not be negative")
		}
	}
	if req.Date == nil || req.Date.IsZero() {
		return HeartRateSession{}, errs.Validation("date", "missing")
	}
	hi := req.Z3 + req.Z4 + req.Z5
	return HeartRateSession{
		Z1: req.Z1, Z2: req.Z2, Z3: req.Z3, Z4: req.Z4, Z5: req.Z5,
		Hi:   &hi,
		Date: *req.Date,
	}, nil
}

func (handler *Handler) recordAdded(ctx context.Context, userID int64, kind live.Kind) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecordsAdded.WithLabelValues(string(kind)).Inc()
	}
	handler.notifier.Notify(ctx, userID, kind)
}

func (handler *Handler) HandleAddLiftSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.lifts.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddLiftSetRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("add lift set, decode request: %s", err)
		http.Error(w, "invalid lift set request", http.StatusBadRequest)
		return
	}
	set, err := req.toLiftSet()
	if err != nil {
		errs.WriteHTTP(w, err, "invalid lift set")
		return
	}

	added, err := handler.repo.AddLiftSet(ctx, userID, set)
	if err != nil {
		log.Errorf("failed to add lift set [%s] for user %d: %s", set.Lift, userID, err)
		errs.WriteHTTP(w, errs.Collaborator("add lift set", err), "failed to add lift set")
		return
	}

	log.Debugf("lift set added: [%s] %.1f x %d: %d", added.Lift, added.Weight, added.Reps, added.ID)
	handler.recordAdded(ctx, userID, live.KindLifts)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

// HandleListLiftSets GET /progress/lifts?lift=bench
func (handler *Handler) HandleListLiftSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.lifts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	lift := Lift(r.URL.Query().Get("lift"))
	if lift != "" && !lift.Valid() {
		http.Error(w, "unknown lift", http.StatusBadRequest)
		return
	}

	sets, err := handler.repo.ListLiftSets(ctx, userID, lift)
	if err != nil {
		log.Errorf("failed to list lift sets for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list lift sets", err), "failed to list lift sets")
		return
	}
	if sets == nil {
		sets = []LiftSet{}
	}

	pkg.WriteJSON(w, sets, http.StatusOK)
}

func (handler *Handler) HandleDeleteLiftSet(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "handler.progress.lifts.delete", live.KindLifts, handler.repo.DeleteLiftSet)
}

func (handler *Handler) HandleAddRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.runs.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddRunRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("add run, decode request: %s", err)
		http.Error(w, "invalid run request", http.StatusBadRequest)
		return
	}
	run, err := req.toRun()
	if err != nil {
		errs.WriteHTTP(w, err, "invalid run")
		return
	}

	added, err := handler.repo.AddRun(ctx, userID, run)
	if err != nil {
		log.Errorf("failed to add run for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("add run", err), "failed to add run")
		return
	}

	handler.recordAdded(ctx, userID, live.KindRuns)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.runs.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	runs, err := handler.repo.ListRuns(ctx, userID)
	if err != nil {
		log.Errorf("failed to list runs for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list runs", err), "failed to list runs")
		return
	}
	if runs == nil {
		runs = []Run{}
	}

	pkg.WriteJSON(w, runs, http.StatusOK)
}

func (handler *Handler) HandleDeleteRun(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "handler.progress.runs.delete", live.KindRuns, handler.repo.DeleteRun)
}

func (handler *Handler) HandleAddHeartRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.hr.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddHeartRateRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("add hr session, decode request: %s", err)
		http.Error(w, "invalid hr request", http.StatusBadRequest)
		return
	}
	session, err := req.toSession()
	if err != nil {
		errs.WriteHTTP(w, err, "invalid hr session")
		return
	}

	added, err := handler.repo.AddHeartRate(ctx, userID, session)
	if err != nil {
		log.Errorf("failed to add hr session for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("add hr session", err), "failed to add hr session")
		return
	}

	handler.recordAdded(ctx, userID, live.KindHeartRate)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleListHeartRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.hr.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessions, err := handler.repo.ListHeartRate(ctx, userID)
	if err != nil {
		log.Errorf("failed to list hr sessions for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list hr sessions", err), "failed to list hr sessions")
		return
	}
	if sessions == nil {
		sessions = []HeartRateSession{}
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleDeleteHeartRate(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "handler.progress.hr.delete", live.KindHeartRate, handler.repo.DeleteHeartRate)
}

func (handler *Handler) handleDelete(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	kind live.Kind,
	deleteFunc func(ctx context.Context, userID, id int64) error,
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := pkg.PathInt64(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := deleteFunc(ctx, userID, id); err != nil {
		log.Errorf("failed to delete [%s] record %d: %s", kind, id, err)
		errs.WriteHTTP(w, errs.Collaborator("delete "+string(kind), err), "failed to delete record")
		return
	}

	handler.notifier.Notify(ctx, userID, kind)
	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

// HandleTrend GET /progress/trend?lift=bench&days=90
func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.trend")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	lift := Lift(r.URL.Query().Get("lift"))
	if lift == "" {
		lift = LiftBench
	}
	if !lift.Valid() {
		http.Error(w, "unknown lift", http.StatusBadRequest)
		return
	}

	days := DefaultTrendWindow
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		d, err := strconv.Atoi(daysParam)
		if err != nil || !TrendWindows[d] {
			http.Error(w, "days must be one of 30, 90, 365", http.StatusBadRequest)
			return
		}
		days = d
	}

	sets, err := handler.repo.ListLiftSets(ctx, userID, lift)
	if err != nil {
		log.Errorf("trend, list lift sets for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list lift sets", err), "failed to get trend")
		return
	}

	pkg.WriteJSON(w, Trend(sets, days, handler.nowFunc().In(handler.loc)), http.StatusOK)
}

func (handler *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.volume")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sets, err := handler.repo.ListLiftSets(ctx, userID, "")
	if err != nil {
		log.Errorf("weekly volume, list lift sets for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list lift sets", err), "failed to get weekly volume")
		return
	}

	pkg.WriteJSON(w, WeeklyVolume(sets), http.StatusOK)
}

func (handler *Handler) HandleBests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.bests")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sets, err := handler.repo.ListLiftSets(ctx, userID, "")
	if err != nil {
		log.Errorf("bests, list lift sets for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list lift sets", err), "failed to get personal bests")
		return
	}
	runs, err := handler.repo.ListRuns(ctx, userID)
	if err != nil {
		log.Errorf("bests, list runs for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list runs", err), "failed to get personal bests")
		return
	}
	sessions, err := handler.repo.ListHeartRate(ctx, userID)
	if err != nil {
		log.Errorf("bests, list hr sessions for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list hr sessions", err), "failed to get personal bests")
		return
	}

	pkg.WriteJSON(w, Bests(sets, runs, sessions), http.StatusOK)
}
