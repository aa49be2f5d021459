package photos

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=photos_test

// uploads above this are rejected before decoding
const maxUploadBytes = 25 << 20

type photosService interface {
	Upload(ctx context.Context, userID int64, params UploadParams) (*Photo, error)
	List(ctx context.Context, userID int64) ([]Photo, error)
	Image(ctx context.Context, userID int64, id string) ([]byte, error)
	Thumbnail(ctx context.Context, userID int64, id string) ([]byte, error)
	UpdateCaption(ctx context.Context, userID int64, id, caption string) error
	Delete(ctx context.Context, userID int64, id string) error
}

type UpdateCaptionRequest struct {
	Caption string `json:"caption"`
}

type Handler struct {
	service photosService
}

func NewHandler(service photosService) *Handler {
	return &Handler{
		service: service,
	}
}

func photoID(r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return strings.ToLower(id), true
}

// HandleUpload POST /photos, multipart with file, caption and date fields.
func (handler *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.upload")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Errorf("upload photo, parse multipart form: %s", err)
		http.Error(w, "invalid form or file too big", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file selected", http.StatusBadRequest)
		return
	}
	defer file.Close()
	log.Debugf("photo upload: %s, %d bytes", fileHeader.Filename, fileHeader.Size)

	params := UploadParams{
		File:    file,
		Caption: r.FormValue("caption"),
	}
	if dateParam := r.FormValue("date"); dateParam != "" {
		date, err := calc.ToCalendarDate(dateParam)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		params.Date = &date
	}

	photo, err := handler.service.Upload(ctx, userID, params)
	if err != nil {
		log.Errorf("failed to upload photo for user %d: %s", userID, err)
		errs.WriteHTTP(w, err, "failed to store photo")
		return
	}

	pkg.WriteJSON(w, photo, http.StatusCreated)
}

// HandleList GET /photos, newest first
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	photos, err := handler.service.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list photos for user %d: %s", userID, err)
		errs.WriteHTTP(w, err, "failed to list photos")
		return
	}

	pkg.WriteJSON(w, photos, http.StatusOK)
}

func (handler *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	handler.serveImage(w, r, "handler.photos.image", handler.service.Image)
}

func (handler *Handler) HandleThumbnail(w http.ResponseWriter, r *http.Request) {
	handler.serveImage(w, r, "handler.photos.thumbnail", handler.service.Thumbnail)
}

func (handler *Handler) serveImage(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	load func(ctx context.Context, userID int64, id string) ([]byte, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, ok := photoID(r)
	if !ok {
		http.Error(w, "invalid photo id", http.StatusBadRequest)
		return
	}

	image, err := load(ctx, userID, id)
	if err != nil {
		log.Errorf("failed to load photo %s: %s", id, err)
		errs.WriteHTTP(w, err, "failed to load photo")
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=3600")
	pkg.WriteResponseBytesOK(w, ContentTypeJPEG, image)
}

// HandleUpdateCaption PATCH /photos/{id}
func (handler *Handler) HandleUpdateCaption(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.caption")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, ok := photoID(r)
	if !ok {
		http.Error(w, "invalid photo id", http.StatusBadRequest)
		return
	}

	var req UpdateCaptionRequest
	if err := pkg.DecodeJSONRequest(r, &req); err != nil {
		log.Errorf("update caption, decode request: %s", err)
		http.Error(w, "invalid caption request", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateCaption(ctx, userID, id, req.Caption); err != nil {
		log.Errorf("failed to update caption of photo %s: %s", id, err)
		errs.WriteHTTP(w, err, "failed to update caption")
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, ok := photoID(r)
	if !ok {
		http.Error(w, "invalid photo id", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		log.Errorf("failed to delete photo %s: %s", id, err)
		errs.WriteHTTP(w, err, "failed to delete photo")
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted":true}`)
}
