package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	AddBatch(ctx context.Context, batch []Workout) ([]Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]Workout, error)
	ListSince(ctx context.Context, from time.Time) ([]Workout, error)
}

const (
	listCacheKey    = "workouts::all"
	listCacheExpire = 60 * 60 // seconds
)

// Service wraps the workouts repo with a small list cache. Every successful
// mutation evicts the cached list, so readers never see a stale view.
type Service struct {
	repo  workoutsRepo
	cache *freecache.Cache
}

func NewService(repo workoutsRepo) *Service {
	megabyte := 1024 * 1024
	return &Service{
		repo:  repo,
		cache: freecache.NewCache(10 * megabyte),
	}
}

func (s *Service) Create(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	added, err := s.repo.Add(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	s.invalidateListCache()
	return added, nil
}

// CreateBatch stores all given workouts, or none of them.
func (s *Service) CreateBatch(ctx context.Context, batch []Workout) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.createbatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := time.Now()
	for i := range batch {
		if batch[i].CreatedAt.IsZero() {
			batch[i].CreatedAt = now
		}
	}

	added, err := s.repo.AddBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("add workouts batch: %w", err)
	}

	s.invalidateListCache()
	return added, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

// List returns all workouts, newest first, served from cache when possible.
func (s *Service) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cachedBytes, err := s.cache.Get([]byte(listCacheKey)); err == nil {
		var cached []Workout
		if unmarshalErr := json.Unmarshal(cachedBytes, &cached); unmarshalErr == nil {
			log.Tracef("workouts list served from cache, %d entries", len(cached))
			return cached, nil
		} else {
			log.Errorf("failed to unmarshal cached workouts list: %s", unmarshalErr)
		}
	}

	workouts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	if workoutsJson, err := json.Marshal(workouts); err == nil {
		if err := s.cache.Set([]byte(listCacheKey), workoutsJson, listCacheExpire); err != nil {
			log.Tracef("failed to cache workouts list: %s", err)
		}
	}

	return workouts, nil
}

// ListRecent returns the workouts of the trailing windowDays days, newest first.
func (s *Service) ListRecent(ctx context.Context, windowDays int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listrecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from := time.Now().AddDate(0, 0, -windowDays)
	workouts, err := s.repo.ListSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("list recent workouts: %w", err)
	}
	return workouts, nil
}

func (s *Service) invalidateListCache() {
	s.cache.Del([]byte(listCacheKey))
}
