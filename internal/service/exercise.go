package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fittrack/fittrack/internal/cache"
	"github.com/fittrack/fittrack/internal/metrics"
	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/repository"
)

// ExerciseService handles exercise business logic.
type ExerciseService struct {
	store   Store
	cache   UserCache
	metrics metrics.Recorder
	now     func() time.Time
}

// NewExerciseService creates a new ExerciseService.
// cache may be nil, in which case caching is skipped.
func NewExerciseService(store Store, userCache UserCache, recorder metrics.Recorder) *ExerciseService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ExerciseService{
		store:   store,
		cache:   userCache,
		metrics: recorder,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// AddExerciseInput carries the raw request fields for adding an exercise.
// Duration and Date arrive as text; validation happens here.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AddExerciseOutput pairs the stored exercise with the owning user.
type AddExerciseOutput struct {
	User     *model.User
	Exercise *model.Exercise
}

// AddExercise validates the input and stores a new exercise for the user.
// Check order matters: the user lookup runs before field validation, so an
// unknown user is reported as not-found even when the body is also invalid.
func (s *ExerciseService) AddExercise(ctx context.Context, input AddExerciseInput) (*AddExerciseOutput, error) {
	user, err := s.resolveUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Description == "" || input.Duration == "" {
		return nil, ErrMissingFields
	}

	duration, err := strconv.Atoi(strings.TrimSpace(input.Duration))
	if err != nil {
		return nil, ErrInvalidDuration
	}

	exercise := &model.Exercise{
		ID:          ulid.Make().String(),
		UserID:      user.ID,
		Description: input.Description,
		Duration:    duration,
		Date:        resolveDate(input.Date, s.now),
		CreatedAt:   s.now(),
	}

	if err := s.store.CreateExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.metrics.IncExerciseAdded()

	return &AddExerciseOutput{User: user, Exercise: exercise}, nil
}

// LogQuery carries the raw query parameters for the exercise log.
// From, To and Limit are unparsed text; unparseable values are ignored.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// Log is the result of a log query. Count reflects the post-limit size.
type Log struct {
	User      *model.User
	Exercises []*model.Exercise
}

// GetLog retrieves a user's exercises, filtered and capped per the query.
func (s *ExerciseService) GetLog(ctx context.Context, query LogQuery) (*Log, error) {
	start := s.now()
	defer func() {
		s.metrics.ObserveLogQueryDuration(time.Since(start))
	}()

	user, err := s.resolveUser(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	filter := repository.ExerciseFilter{UserID: user.ID}

	if from, ok := parseDate(query.From); ok {
		filter.From = &from
	}
	if to, ok := parseDate(query.To); ok {
		// Inclusive of the entire "to" calendar day.
		before := to.AddDate(0, 0, 1)
		filter.Before = &before
	}
	if limit, err := strconv.Atoi(query.Limit); err == nil && limit > 0 {
		filter.Limit = limit
	}

	exercises, err := s.store.ListExercises(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	s.metrics.IncLogQuery()

	return &Log{User: user, Exercises: exercises}, nil
}

// resolveUser looks up a user by ID, cache first.
// Cache errors fall through to the store; a store miss is negatively cached.
func (s *ExerciseService) resolveUser(ctx context.Context, id string) (*model.User, error) {
	if s.cache != nil {
		if username, err := s.cache.GetUsername(ctx, id); err == nil {
			s.metrics.IncUserCacheHit()
			return &model.User{ID: id, Username: username}, nil
		} else if errors.Is(err, cache.ErrCacheMiss) {
			s.metrics.IncUserCacheMiss()
			if negative, _ := s.cache.IsNegativelyCached(ctx, id); negative {
				return nil, ErrUserNotFound
			}
		}
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			if s.cache != nil {
				_ = s.cache.SetNegativeCache(ctx, id)
			}
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetUsername(ctx, user.ID, user.Username)
	}

	return user, nil
}
