package workouts

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Create(ctx context.Context, userID int64, req SaveRequest) (*Workout, error)
	Get(ctx context.Context, userID, id int64) (*Workout, error)
	List(ctx context.Context, userID int64) ([]Workout, error)
	Rows(ctx context.Context, userID, id int64) ([]Row, error)
	Update(ctx context.Context, userID, id int64, req SaveRequest) (*Workout, error)
	Delete(ctx context.Context, userID, id int64) error
	ToggleDone(ctx context.Context, userID, id int64, index int) (*ToggleResult, error)
	Logs(ctx context.Context, userID int64, from, to *calc.Date) ([]ExerciseLog, error)
}

type DeleteWorkoutResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type Handler struct {
	service workoutsService
	loc     *time.Location
}

func NewHandler(service workoutsService, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		service: service,
		loc:     loc,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("create workout, decode request: %s", err)
		http.Error(w, "invalid workout request", http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		log.Errorf("failed to create workout for user %d: %s", userID, err)
		errs.WriteHTTP(w, err, "failed to create workout")
		return
	}

	log.Debugf("workout created: [%s] %d exercises: %d", created.Name, len(created.Exercises), created.ID)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workouts, err := handler.service.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list workouts for user %d: %s", userID, err)
		errs.WriteHTTP(w, err, "failed to list workouts")
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
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

	workout, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		log.Errorf("failed to get workout %d: %s", id, err)
		errs.WriteHTTP(w, err, "failed to get workout")
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

// HandleRows returns the workout exercises as editor rows.
func (handler *Handler) HandleRows(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.rows")
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

	rows, err := handler.service.Rows(ctx, userID, id)
	if err != nil {
		log.Errorf("failed to get rows of workout %d: %s", id, err)
		errs.WriteHTTP(w, err, "failed to get workout rows")
		return
	}

	pkg.WriteJSON(w, rows, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
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

	var req SaveRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("update workout, decode request: %s", err)
		http.Error(w, "invalid workout request", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.Update(ctx, userID, id, req)
	if err != nil {
		log.Errorf("failed to update workout %d: %s", id, err)
		errs.WriteHTTP(w, err, "failed to update workout")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
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

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		log.Errorf("failed to delete workout %d: %s", id, err)
		errs.WriteHTTP(w, err, "failed to delete workout")
		return
	}

	pkg.WriteJSON(w, DeleteWorkoutResponse{DeletedID: id}, http.StatusOK)
}

// HandleToggleDone POST /workouts/{id}/exercises/{index}/toggle-done
func (handler *Handler) HandleToggleDone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.toggle")
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
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "error, index NaN", http.StatusBadRequest)
		return
	}

	result, err := handler.service.ToggleDone(ctx, userID, id, index)
	if err != nil {
		log.Errorf("failed to toggle exercise %d of workout %d: %s", index, id, err)
		errs.WriteHTTP(w, err, "failed to toggle exercise")
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

// HandleLogs GET /exercise-logs?from=YYYY-MM-DD&to=YYYY-MM-DD
func (handler *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logs")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, err := handler.queryDate(r, "from")
	if err != nil {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	to, err := handler.queryDate(r, "to")
	if err != nil {
		http.Error(w, "invalid to date", http.StatusBadRequest)
		return
	}

	logs, err := handler.service.Logs(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list exercise logs for user %d: %s", userID, err)
		errs.WriteHTTP(w, err, "failed to list exercise logs")
		return
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (handler *Handler) queryDate(r *http.Request, name string) (*calc.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := calc.ParseISODate(raw, handler.loc)
	if err != nil {
		return nil, err
	}
	d := calc.DateOf(t)
	return &d, nil
}
