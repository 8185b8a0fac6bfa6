package visits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=service.go -destination=service_mocks_test.go -package=visits_test

type visitsRepo interface {
	Add(ctx context.Context, day time.Time) (*Visit, error)
	GetForDay(ctx context.Context, day time.Time) (*Visit, error)
	DeleteForDay(ctx context.Context, day time.Time) error
	ListRange(ctx context.Context, from, to time.Time) ([]Visit, error)
}

type Service struct {
	repo visitsRepo
}

func NewService(repo visitsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Toggle marks the given day as attended if it is not, and un-marks it if
// it is. Returns whether the day is attended after the toggle.
//
// The lookup and the write are separate calls, two concurrent toggles for
// the same day can both see "absent". The unique constraint on the day
// column closes that race: the second insert fails with a unique
// violation and is reported as already marked.
func (s *Service) Toggle(ctx context.Context, day time.Time) (marked bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.visits.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day.Format(DayFormat)))

	_, err = s.repo.GetForDay(ctx, day)
	switch {
	case err == nil:
		if err := s.repo.DeleteForDay(ctx, day); err != nil {
			return false, fmt.Errorf("delete visit: %w", err)
		}
		return false, nil
	case errors.Is(err, ErrVisitNotFound):
		if _, err := s.repo.Add(ctx, day); err != nil {
			if pkg.IsUniqueViolationError(err) {
				log.Warnf("visit for %s added concurrently", day.Format(DayFormat))
				return true, nil
			}
			return false, fmt.Errorf("add visit: %w", err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("get visit: %w", err)
	}
}

// ListWeek returns the visits of the Monday-Sunday week containing now.
func (s *Service) ListWeek(ctx context.Context, now time.Time) (_ []Visit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.visits.listweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	monday, sundayEnd := WeekRange(now)
	visits, err := s.repo.ListRange(ctx, monday, sundayEnd)
	if err != nil {
		return nil, fmt.Errorf("list weekly visits: %w", err)
	}
	return visits, nil
}

// WeekRange computes the Monday-Sunday window of the week containing now:
// Monday 00:00:00 through the last nanosecond of Sunday. Sunday belongs to
// the week started by the previous Monday.
func WeekRange(now time.Time) (monday, sundayEnd time.Time) {
	dayIndex := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		dayIndex = 6
	}

	monday = Normalize(now).AddDate(0, 0, -dayIndex)
	sundayEnd = monday.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return monday, sundayEnd
}
