package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/fittrack/fittrack/internal/cache"
	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/repository"
)

// fakeStore is an in-memory Store for tests.
type fakeStore struct {
	users     []*model.User
	exercises []*model.Exercise
	failWith  error
}

func (f *fakeStore) CreateUser(_ context.Context, user *model.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) ListUsers(_ context.Context) ([]*model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.users, nil
}

func (f *fakeStore) CreateExercise(_ context.Context, exercise *model.Exercise) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.exercises = append(f.exercises, exercise)
	return nil
}

func (f *fakeStore) ListExercises(_ context.Context, filter repository.ExerciseFilter) ([]*model.Exercise, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	var matched []*model.Exercise
	for _, e := range f.exercises {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.Before != nil && !e.Date.Before(*filter.Before) {
			continue
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

// fakeCache is an in-memory UserCache for tests.
type fakeCache struct {
	usernames map[string]string
	negatives map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		usernames: make(map[string]string),
		negatives: make(map[string]bool),
	}
}

func (f *fakeCache) GetUsername(_ context.Context, id string) (string, error) {
	username, ok := f.usernames[id]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return username, nil
}

func (f *fakeCache) SetUsername(_ context.Context, id, username string) error {
	f.usernames[id] = username
	delete(f.negatives, id)
	return nil
}

func (f *fakeCache) IsNegativelyCached(_ context.Context, id string) (bool, error) {
	return f.negatives[id], nil
}

func (f *fakeCache) SetNegativeCache(_ context.Context, id string) error {
	f.negatives[id] = true
	return nil
}

// seedUser inserts a user directly into the fake store.
func seedUser(store *fakeStore, id, username string) *model.User {
	user := &model.User{ID: id, Username: username, CreatedAt: time.Now().UTC()}
	store.users = append(store.users, user)
	return user
}

var errStoreDown = errors.New("store down")
