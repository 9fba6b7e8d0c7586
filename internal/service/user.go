package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fittrack/fittrack/internal/metrics"
	"github.com/fittrack/fittrack/internal/model"
)

// UserService handles user business logic.
type UserService struct {
	store   Store
	cache   UserCache
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
// cache may be nil, in which case caching is skipped.
func NewUserService(store Store, cache UserCache, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		cache:   cache,
		metrics: recorder,
	}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Username string
}

// CreateUser creates a new user. Usernames are required but not unique.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Username == "" {
		return nil, ErrUsernameRequired
	}

	user := &model.User{
		ID:        ulid.Make().String(),
		Username:  input.Username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserCreated()

	// Prime the cache so the first add-exercise call skips the DB lookup.
	if s.cache != nil {
		_ = s.cache.SetUsername(ctx, user.ID, user.Username)
	}

	return user, nil
}

// ListUsers returns all users in the store's retrieval order.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
