package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout
				(exercise, sets, reps, weight, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		workout.Exercise, workout.Sets, workout.Reps, workout.Weight, workout.Notes, workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

// AddBatch inserts all given workouts in a single transaction.
// Either all of them are committed, or none.
func (r *Repo) AddBatch(ctx context.Context, batch []Workout) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addbatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("batch.size", len(batch)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	added := make([]Workout, 0, len(batch))
	for _, workout := range batch {
		err = tx.QueryRow(ctx, `
			INSERT INTO workout (exercise, sets, reps, weight, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
			workout.Exercise, workout.Sets, workout.Reps, workout.Weight, workout.Notes, workout.CreatedAt,
		).Scan(&workout.ID)
		if err != nil {
			return nil, fmt.Errorf("insert workout [%s]: %w", workout.Exercise, err)
		}
		added = append(added, workout)
	}

	return added, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	workout := &Workout{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, exercise, sets, reps, weight, notes, created_at
			FROM workout
			WHERE id = $1
		`, id).
		Scan(
			&workout.ID, &workout.Exercise, &workout.Sets, &workout.Reps,
			&workout.Weight, &workout.Notes, &workout.CreatedAt,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return workout, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// List returns all workouts, newest first.
func (r *Repo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, exercise, sets, reps, weight, notes, created_at
		FROM workout
		ORDER BY created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}
	return workouts, nil
}

// ListSince returns all workouts created at or after the given time, newest first.
func (r *Repo) ListSince(ctx context.Context, from time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))

	rows, err := r.db.Query(ctx, `
		SELECT id, exercise, sets, reps, weight, notes, created_at
		FROM workout
		WHERE created_at >= $1
		ORDER BY created_at DESC;
	`, from)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}
	return workouts, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.Exercise, &w.Sets, &w.Reps,
			&w.Weight, &w.Notes, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}

	return workouts, nil
}
