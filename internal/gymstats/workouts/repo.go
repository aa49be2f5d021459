package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/v-brkic/FitnessTrackingApp/internal/db"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

type Repo struct {
	db db.Pool
}

func NewRepo(db db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func marshalExercises(exercises []Exercise) ([]byte, error) {
	if exercises == nil {
		exercises = []Exercise{}
	}
	return json.Marshal(exercises)
}

func (r *Repo) Create(ctx context.Context, userID int64, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := marshalExercises(w.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout (user_id, name, image_url, difficulty, exercises)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at;`,
		userID, w.Name, w.ImageURL, w.Difficulty, exercisesJson,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			// the user row is gone while the session still lives
			return nil, fmt.Errorf("insert workout for user %d: %w", userID, errs.ErrUnauthorized)
		}
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int64("workout.id", w.ID))
	return &w, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	var (
		w             Workout
		exercisesJson []byte
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, image_url, difficulty, exercises, created_at, updated_at
			FROM workout
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&w.ID, &w.Name, &w.ImageURL, &w.Difficulty, &exercisesJson, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("workout %d: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	if err := json.Unmarshal(exercisesJson, &w.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises of workout %d: %w", id, err)
	}

	return &w, nil
}

// List returns the user's workouts, newest first.
func (r *Repo) List(ctx context.Context, userID int64) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, image_url, difficulty, exercises, created_at, updated_at
			FROM workout
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var (
			w             Workout
			exercisesJson []byte
		)
		if err := rows.Scan(&w.ID, &w.Name, &w.ImageURL, &w.Difficulty, &exercisesJson, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &w.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises of workout %d: %w", w.ID, err)
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

func (r *Repo) Update(ctx context.Context, userID int64, w Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", w.ID))

	exercisesJson, err := marshalExercises(w.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout
			SET name = $3, image_url = $4, difficulty = $5, exercises = $6, updated_at = now()
			WHERE id = $1 AND user_id = $2;`,
		w.ID, userID, w.Name, w.ImageURL, w.Difficulty, exercisesJson,
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repo) UpdateExercises(ctx context.Context, userID, id int64, exercises []Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	exercisesJson, err := marshalExercises(exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET exercises = $3, updated_at = now() WHERE id = $1 AND user_id = $2;`,
		id, userID, exercisesJson,
	)
	if err != nil {
		return fmt.Errorf("update exercises: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repo) AddLog(ctx context.Context, userID int64, l ExerciseLog) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_log (
				user_id, workout_id, workout_name, exercise_index, exercise_name, muscle_group,
				weight, sets, reps, minutes, performed_at, performed_at_date
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;`,
		userID, l.WorkoutID, l.WorkoutName, l.ExerciseIndex, l.ExerciseName, l.Group,
		l.Weight, l.Sets, l.Reps, l.Minutes, l.PerformedAt, l.PerformedAtDate.Time,
	).Scan(&l.ID)
	if err != nil {
		return nil, fmt.Errorf("insert exercise log: %w", err)
	}

	span.SetAttributes(attribute.Int64("exercise_log.id", l.ID))
	return &l, nil
}

// ListLogs returns logs performed within [from, to]. A nil bound is open.
func (r *Repo) ListLogs(ctx context.Context, userID int64, from, to *calc.Date) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var fromParam, toParam *time.Time
	if from != nil {
		fromParam = &from.Time
		span.SetAttributes(attribute.String("from", from.String()))
	}
	if to != nil {
		toParam = &to.Time
		span.SetAttributes(attribute.String("to", to.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, workout_name, exercise_index, exercise_name, muscle_group,
				weight, sets, reps, minutes, performed_at, performed_at_date
			FROM exercise_log
			WHERE user_id = $1
				AND ($2::date IS NULL OR performed_at_date >= $2::date)
				AND ($3::date IS NULL OR performed_at_date <= $3::date)
			ORDER BY performed_at, id;`,
		userID, fromParam, toParam,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercise logs: %w", err)
	}
	defer rows.Close()

	var logs []ExerciseLog
	for rows.Next() {
		var (
			l    ExerciseLog
			date time.Time
		)
		if err := rows.Scan(
			&l.ID, &l.WorkoutID, &l.WorkoutName, &l.ExerciseIndex, &l.ExerciseName, &l.Group,
			&l.Weight, &l.Sets, &l.Reps, &l.Minutes, &l.PerformedAt, &date,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		l.PerformedAtDate = calc.DateOf(date)
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
