package bodyweight

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

func (r *Repo) Add(ctx context.Context, userID int64, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO bodyweight (user_id, kg, date)
			VALUES ($1, $2, $3)
		RETURNING id, created_at;`,
		userID, entry.Kg, entry.Date.Time,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert bodyweight: %w", err)
	}

	span.SetAttributes(attribute.Int64("bodyweight.id", entry.ID))
	return &entry, nil
}

// List returns the user's entries ordered by date ascending.
func (r *Repo) List(ctx context.Context, userID int64) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, kg, date, created_at
			FROM bodyweight
			WHERE user_id = $1
			ORDER BY date, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query bodyweight: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e    Entry
			date time.Time
		)
		if err := rows.Scan(&e.ID, &e.Kg, &date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		e.Date = calc.DateOf(date)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Update changes kg and/or date; nil fields are kept.
func (r *Repo) Update(ctx context.Context, userID, id int64, req UpdateRequest) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	var date *time.Time
	if req.Date != nil {
		date = &req.Date.Time
	}

	var (
		e      Entry
		dbDate time.Time
	)
	err = r.db.QueryRow(
		ctx,
		`UPDATE bodyweight
			SET kg = COALESCE($3, kg), date = COALESCE($4, date)
			WHERE id = $1 AND user_id = $2
		RETURNING id, kg, date, created_at;`,
		id, userID, req.Kg, date,
	).Scan(&e.ID, &e.Kg, &dbDate, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update bodyweight: %w", err)
	}

	e.Date = calc.DateOf(dbDate)
	return &e, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM bodyweight WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete bodyweight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
