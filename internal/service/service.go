// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"

	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/repository"
)

// Service errors.
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUserNotFound     = errors.New("user not found")
	ErrMissingFields    = errors.New("description and duration are required")
	ErrInvalidDuration  = errors.New("duration must be a number")
)

// Store is the persistence adapter the services operate against.
// *repository.Repository satisfies it; tests use an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateExercise(ctx context.Context, exercise *model.Exercise) error
	ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]*model.Exercise, error)
}

// UserCache caches username lookups by user ID.
// *cache.Cache satisfies it. Cache failures are never surfaced to callers;
// the services fall through to the store.
type UserCache interface {
	GetUsername(ctx context.Context, id string) (string, error)
	SetUsername(ctx context.Context, id, username string) error
	IsNegativelyCached(ctx context.Context, id string) (bool, error)
	SetNegativeCache(ctx context.Context, id string) error
}
