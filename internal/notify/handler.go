package notify

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=notify_test

type reminderScheduler interface {
	ScheduleOnce(ctx context.Context, userID int64, req OnceRequest) (*Reminder, error)
	ScheduleDaily(ctx context.Context, userID int64, req DailyRequest) (*Reminder, error)
	Cancel(ctx context.Context, userID int64, id string) error
	List(ctx context.Context, userID int64) []Reminder
}

type Handler struct {
	scheduler reminderScheduler
}

func NewHandler(scheduler reminderScheduler) *Handler {
	return &Handler{
		scheduler: scheduler,
	}
}

// HandleScheduleOnce POST /reminders/once {minutes, message}
func (handler *Handler) HandleScheduleOnce(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.once")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req OnceRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("schedule reminder, decode request: %s", err)
		http.Error(w, "invalid reminder request", http.StatusBadRequest)
		return
	}

	reminder, err := handler.scheduler.ScheduleOnce(ctx, userID, req)
	if err != nil {
		errs.WriteHTTP(w, err, "failed to schedule reminder")
		return
	}

	pkg.WriteJSON(w, reminder, http.StatusCreated)
}

// HandleScheduleDaily POST /reminders/daily {hour, minute, message}
func (handler *Handler) HandleScheduleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.daily")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req DailyRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("schedule daily reminder, decode request: %s", err)
		http.Error(w, "invalid reminder request", http.StatusBadRequest)
		return
	}

	reminder, err := handler.scheduler.ScheduleDaily(ctx, userID, req)
	if err != nil {
		log.Errorf("failed to schedule daily reminder for user %d: %s", userID, err)
		errs.WriteHTTP(w, err, "failed to schedule reminder")
		return
	}

	pkg.WriteJSON(w, reminder, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSON(w, handler.scheduler.List(ctx, userID), http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.cancel")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if err := handler.scheduler.Cancel(ctx, userID, id); err != nil {
		errs.WriteHTTP(w, err, "failed to cancel reminder")
		return
	}

	pkg.WriteJSONResponseOK(w, `{"cancelled":true}`)
}
