package photos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/v-brkic/FitnessTrackingApp/internal/db"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
)

type Repo struct {
	db db.Pool
}

func NewRepo(db db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID int64, photo Photo, image []byte) (_ *Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("photo.id", photo.ID))
	span.SetAttributes(attribute.Int("photo.bytes", len(image)))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO progress_photo (id, user_id, caption, date, content_type, width, height, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at;`,
		photo.ID, userID, photo.Caption, photo.Date.Time, photo.ContentType, photo.Width, photo.Height, image,
	).Scan(&photo.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}

	photo.ApproxBytes = len(image)
	return &photo, nil
}

// List returns photo metadata, newest first.
func (r *Repo) List(ctx context.Context, userID int64) (_ []Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, caption, date, content_type, width, height, octet_length(image), created_at
			FROM progress_photo
			WHERE user_id = $1
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var (
			p    Photo
			date time.Time
		)
		if err := rows.Scan(&p.ID, &p.Caption, &date, &p.ContentType, &p.Width, &p.Height, &p.ApproxBytes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		p.Date = calc.DateOf(date)
		photos = append(photos, p)
	}

	return photos, rows.Err()
}

// Image returns the stored bytes and their content type.
func (r *Repo) Image(ctx context.Context, userID int64, id string) (_ []byte, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.image")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("photo.id", id))

	var (
		image       []byte
		contentType string
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT image, content_type FROM progress_photo WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&image, &contentType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", errs.ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("select photo image: %w", err)
	}

	return image, contentType, nil
}

func (r *Repo) UpdateCaption(ctx context.Context, userID int64, id, caption string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.caption")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("photo.id", id))

	tag, err := r.db.Exec(ctx, `UPDATE progress_photo SET caption = $3 WHERE id = $1 AND user_id = $2;`, id, userID, caption)
	if err != nil {
		return fmt.Errorf("update photo caption: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID int64, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("photo.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM progress_photo WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
