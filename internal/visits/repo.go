package visits

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

var ErrVisitNotFound = errors.New("gym visit not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add inserts a visit row for the given day. The gym_visit table has a
// unique constraint on day, a duplicate insert surfaces as a unique
// violation error.
func (r *Repo) Add(ctx context.Context, day time.Time) (_ *Visit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visits.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day.Format(DayFormat)))

	visit := &Visit{Day: Normalize(day)}
	err = r.db.
		QueryRow(ctx, `
			INSERT INTO gym_visit (day)
			VALUES ($1)
			RETURNING id
		`, visit.Day).
		Scan(&visit.ID)
	if err != nil {
		return nil, err
	}
	return visit, nil
}

func (r *Repo) GetForDay(ctx context.Context, day time.Time) (_ *Visit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visits.getforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day.Format(DayFormat)))

	visit := &Visit{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, day
			FROM gym_visit
			WHERE day = $1
		`, Normalize(day)).
		Scan(&visit.ID, &visit.Day)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, err
	}
	return visit, nil
}

func (r *Repo) DeleteForDay(ctx context.Context, day time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visits.deleteforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day.Format(DayFormat)))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM gym_visit WHERE day = $1`,
		Normalize(day),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVisitNotFound
	}
	return nil
}

// ListRange returns all visits with a day inside [from, to], oldest first.
func (r *Repo) ListRange(ctx context.Context, from, to time.Time) (_ []Visit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visits.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.Format(DayFormat)))
	span.SetAttributes(attribute.String("to", to.Format(DayFormat)))

	rows, err := r.db.Query(ctx, `
		SELECT id, day
		FROM gym_visit
		WHERE day >= $1 AND day <= $2
		ORDER BY day ASC;
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	visits := make([]Visit, 0)
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.Day); err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}

	return visits, nil
}
