package photos

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/live"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=photos_test

const (
	thumbnailSize    = 240
	maxCaptionLength = 500
)

type photosRepo interface {
	Add(ctx context.Context, userID int64, photo Photo, image []byte) (*Photo, error)
	List(ctx context.Context, userID int64) ([]Photo, error)
	Image(ctx context.Context, userID int64, id string) ([]byte, string, error)
	UpdateCaption(ctx context.Context, userID int64, id, caption string) error
	Delete(ctx context.Context, userID int64, id string) error
}

type changeNotifier interface {
	Notify(ctx context.Context, userID int64, kind live.Kind)
}

type UploadParams struct {
	File    io.Reader
	Caption string
	Date    *calc.Date
}

type ServiceParams struct {
	Compress CompressParams
	CacheMB  int
	Location *time.Location
	NowFunc  func() time.Time
}

type Service struct {
	repo           photosRepo
	notifier       changeNotifier
	metricsManager *metrics.Manager
	cache          *ImageCache
	compress       CompressParams
	loc            *time.Location
	nowFunc        func() time.Time
}

func NewService(repo photosRepo, notifier changeNotifier, metricsManager *metrics.Manager, params ServiceParams) *Service {
	if params.Compress.MaxDimension <= 0 {
		params.Compress = DefaultCompressParams()
	}
	if params.Location == nil {
		params.Location = time.Local
	}
	if params.NowFunc == nil {
		params.NowFunc = time.Now
	}
	return &Service{
		repo:           repo,
		notifier:       notifier,
		metricsManager: metricsManager,
		cache:          NewImageCache(params.CacheMB),
		compress:       params.Compress,
		loc:            params.Location,
		nowFunc:        params.NowFunc,
	}
}

func validCaption(caption string) (string, error) {
	caption = strings.TrimSpace(caption)
	if len(caption) > maxCaptionLength {
		return "", errs.Validation("caption", "too long")
	}
	return caption, nil
}

// Upload compresses the image and stores it. Nothing is stored when the
// image cannot be brought under the byte cap.
func (s *Service) Upload(ctx context.Context, userID int64, params UploadParams) (*Photo, error) {
	caption, err := validCaption(params.Caption)
	if err != nil {
		return nil, err
	}

	compressed, err := Compress(params.File, s.compress)
	if err != nil {
		return nil, err
	}

	date := calc.DateOf(s.nowFunc().In(s.loc))
	if params.Date != nil && !params.Date.IsZero() {
		date = *params.Date
	}

	photo := Photo{
		ID:          uuid.NewString(),
		Caption:     caption,
		Date:        date,
		ContentType: compressed.ContentType,
		Width:       compressed.Width,
		Height:      compressed.Height,
	}
	stored, err := s.repo.Add(ctx, userID, photo, compressed.Data)
	if err != nil {
		return nil, errs.Collaborator("store photo", err)
	}

	log.Debugf("photo %s stored: %dx%d, %d bytes, q=%d", stored.ID, stored.Width, stored.Height, len(compressed.Data), compressed.Quality)
	s.cache.set(userID, stored.ID, variantFull, compressed.Data)
	if s.metricsManager != nil {
		s.metricsManager.CounterPhotosStored.Inc()
		s.metricsManager.HistogramPhotoBytes.Observe(float64(len(compressed.Data)))
	}
	s.notifier.Notify(ctx, userID, live.KindPhotos)

	return stored, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]Photo, error) {
	photos, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, errs.Collaborator("list photos", err)
	}
	if photos == nil {
		photos = []Photo{}
	}
	return photos, nil
}

// Image returns the stored JPEG bytes, from the cache when possible.
func (s *Service) Image(ctx context.Context, userID int64, id string) ([]byte, error) {
	if image, ok := s.cache.get(userID, id, variantFull); ok {
		return image, nil
	}

	image, _, err := s.repo.Image(ctx, userID, id)
	if err != nil {
		return nil, errs.Collaborator("load photo", err)
	}
	s.cache.set(userID, id, variantFull, image)
	return image, nil
}

func (s *Service) Thumbnail(ctx context.Context, userID int64, id string) ([]byte, error) {
	if thumb, ok := s.cache.get(userID, id, variantThumb); ok {
		return thumb, nil
	}

	image, err := s.Image(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	thumb, err := Thumbnail(image, thumbnailSize, s.compress.QualityStart)
	if err != nil {
		return nil, errs.Collaborator("make thumbnail", err)
	}
	s.cache.set(userID, id, variantThumb, thumb)
	return thumb, nil
}

func (s *Service) UpdateCaption(ctx context.Context, userID int64, id, caption string) error {
	caption, err := validCaption(caption)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateCaption(ctx, userID, id, caption); err != nil {
		return errs.Collaborator("update photo caption", err)
	}
	s.notifier.Notify(ctx, userID, live.KindPhotos)
	return nil
}

func (s *Service) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return errs.Collaborator("delete photo", err)
	}
	s.cache.del(userID, id)
	s.notifier.Notify(ctx, userID, live.KindPhotos)
	return nil
}
