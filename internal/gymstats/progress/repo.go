package progress

import (
	"context"
	"fmt"
	"time"

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

func (r *Repo) AddLiftSet(ctx context.Context, userID int64, set LiftSet) (_ *LiftSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.lifts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO lift_set (user_id, lift, weight, reps, date)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`,
		userID, string(set.Lift), set.Weight, set.Reps, set.Date.Time,
	).Scan(&set.ID, &set.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert lift set: %w", err)
	}

	span.SetAttributes(attribute.Int64("lift_set.id", set.ID))
	return &set, nil
}

// ListLiftSets returns the user's sets ordered by date. An empty lift returns all lifts.
func (r *Repo) ListLiftSets(ctx context.Context, userID int64, lift Lift) (_ []LiftSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.lifts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("lift", string(lift)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, lift, weight, reps, date, created_at
			FROM lift_set
			WHERE user_id = $1 AND ($2 = '' OR lift = $2)
			ORDER BY date, id;`,
		userID, string(lift),
	)
	if err != nil {
		return nil, fmt.Errorf("query lift sets: %w", err)
	}
	defer rows.Close()

	var sets []LiftSet
	for rows.Next() {
		var (
			s       LiftSet
			liftStr string
			date    time.Time
		)
		if err := rows.Scan(&s.ID, &liftStr, &s.Weight, &s.Reps, &date, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.Lift = Lift(liftStr)
		s.Date = calc.DateOf(date)
		sets = append(sets, s)
	}

	return sets, rows.Err()
}

func (r *Repo) DeleteLiftSet(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, "repo.progress.lifts.delete", `DELETE FROM lift_set WHERE id = $1 AND user_id = $2;`, userID, id)
}

func (r *Repo) AddRun(ctx context.Context, userID int64, run Run) (_ *Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.runs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO run_5k (user_id, seconds, time_text, date)
			VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`,
		userID, run.Seconds, run.Time, run.Date.Time,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	span.SetAttributes(attribute.Int64("run.id", run.ID))
	return &run, nil
}

func (r *Repo) ListRuns(ctx context.Context, userID int64) (_ []Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.runs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, seconds, time_text, date, created_at
			FROM run_5k
			WHERE user_id = $1
			ORDER BY date, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run  Run
			date time.Time
		)
		if err := rows.Scan(&run.ID, &run.Seconds, &run.Time, &date, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		run.Date = calc.DateOf(date)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *Repo) DeleteRun(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, "repo.progress.runs.delete", `DELETE FROM run_5k WHERE id = $1 AND user_id = $2;`, userID, id)
}

func (r *Repo) AddHeartRate(ctx context.Context, userID int64, hr HeartRateSession) (_ *HeartRateSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.hr.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO hr_session (user_id, z1, z2, z3, z4, z5, hi, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;`,
		userID, hr.Z1, hr.Z2, hr.Z3, hr.Z4, hr.Z5, hr.Hi, hr.Date.Time,
	).Scan(&hr.ID, &hr.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert hr session: %w", err)
	}

	span.SetAttributes(attribute.Int64("hr.id", hr.ID))
	return &hr, nil
}

func (r *Repo) ListHeartRate(ctx context.Context, userID int64) (_ []HeartRateSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.hr.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, z1, z2, z3, z4, z5, hi, date, created_at
			FROM hr_session
			WHERE user_id = $1
			ORDER BY date, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query hr sessions: %w", err)
	}
	defer rows.Close()

	var sessions []HeartRateSession
	for rows.Next() {
		var (
			hr   HeartRateSession
			date time.Time
		)
		if err := rows.Scan(&hr.ID, &hr.Z1, &hr.Z2, &hr.Z3, &hr.Z4, &hr.Z5, &hr.Hi, &date, &hr.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		hr.Date = calc.DateOf(date)
		sessions = append(sessions, hr)
	}

	return sessions, rows.Err()
}

func (r *Repo) DeleteHeartRate(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, "repo.progress.hr.delete", `DELETE FROM hr_session WHERE id = $1 AND user_id = $2;`, userID, id)
}

func (r *Repo) deleteByID(ctx context.Context, spanName, query string, userID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
