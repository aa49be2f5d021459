package bodyweight

import (
	"bytes"
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/live"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/metrics"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=bodyweight_test

type bodyweightRepo interface {
	Add(ctx context.Context, userID int64, entry Entry) (*Entry, error)
	List(ctx context.Context, userID int64) ([]Entry, error)
	Update(ctx context.Context, userID, id int64, req UpdateRequest) (*Entry, error)
	Delete(ctx context.Context, userID, id int64) error
}

type changeNotifier interface {
	Notify(ctx context.Context, userID int64, kind live.Kind)
}

type Handler struct {
	repo           bodyweightRepo
	notifier       changeNotifier
	metricsManager *metrics.Manager
	loc            *time.Location
	nowFunc        func() time.Time
}

func NewHandler(
	repo bodyweightRepo,
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

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("add bodyweight, decode request: %s", err)
		http.Error(w, "invalid bodyweight request", http.StatusBadRequest)
		return
	}
	entry, err := req.Normalize(handler.nowFunc().In(handler.loc))
	if err != nil {
		errs.WriteHTTP(w, err, "invalid bodyweight")
		return
	}

	added, err := handler.repo.Add(ctx, userID, entry)
	if err != nil {
		log.Errorf("failed to add bodyweight for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("add bodyweight", err), "failed to add bodyweight")
		return
	}

	log.Debugf("bodyweight added: %.1f kg on %s: %d", added.Kg, added.Date, added.ID)
	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecordsAdded.WithLabelValues(string(live.KindBodyweight)).Inc()
	}
	handler.notifier.Notify(ctx, userID, live.KindBodyweight)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

// HandleList GET /bodyweight
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list bodyweight for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list bodyweight", err), "failed to list bodyweight")
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

// HandleUpdate PATCH /bodyweight/{id}
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.update")
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

	var req UpdateRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("update bodyweight, decode request: %s", err)
		http.Error(w, "invalid bodyweight request", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		errs.WriteHTTP(w, err, "invalid bodyweight")
		return
	}

	updated, err := handler.repo.Update(ctx, userID, id, req)
	if err != nil {
		log.Errorf("failed to update bodyweight %d: %s", id, err)
		errs.WriteHTTP(w, errs.Collaborator("update bodyweight", err), "failed to update bodyweight")
		return
	}

	handler.notifier.Notify(ctx, userID, live.KindBodyweight)
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.delete")
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

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		log.Errorf("failed to delete bodyweight %d: %s", id, err)
		errs.WriteHTTP(w, errs.Collaborator("delete bodyweight", err), "failed to delete bodyweight")
		return
	}

	handler.notifier.Notify(ctx, userID, live.KindBodyweight)
	pkg.WriteJSON(w, map[string]int64{"deletedId": id}, http.StatusOK)
}

// HandleExportCSV GET /bodyweight/export.csv
func (handler *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.export")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to export bodyweight for user %d: %s", userID, err)
		errs.WriteHTTP(w, errs.Collaborator("list bodyweight", err), "failed to export bodyweight")
		return
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		log.Errorf("write bodyweight csv: %s", err)
		http.Error(w, "failed to export bodyweight", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="bodyweight.csv"`)
	pkg.WriteResponseBytes(w, "text/csv; charset=utf-8", buf.Bytes(), http.StatusOK)
}
