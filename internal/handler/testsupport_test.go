package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/internal/service"
)

var errTestStore = errors.New("store unavailable")

// memStore is an in-memory service.Store for handler tests.
type memStore struct {
	users     []*model.User
	exercises []*model.Exercise
	failWith  error
}

func (m *memStore) CreateUser(_ context.Context, user *model.User) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) ListUsers(_ context.Context) ([]*model.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.users, nil
}

func (m *memStore) CreateExercise(_ context.Context, exercise *model.Exercise) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.exercises = append(m.exercises, exercise)
	return nil
}

func (m *memStore) ListExercises(_ context.Context, filter repository.ExerciseFilter) ([]*model.Exercise, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	var matched []*model.Exercise
	for _, e := range m.exercises {
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

func (m *memStore) addUser(id, username string) *model.User {
	user := &model.User{ID: id, Username: username, CreatedAt: time.Now().UTC()}
	m.users = append(m.users, user)
	return user
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter wires the API routes against an in-memory store.
func newTestRouter(store *memStore) http.Handler {
	logger := discardLogger()
	userHandler := NewUserHandler(service.NewUserService(store, nil, nil), logger)
	exerciseHandler := NewExerciseHandler(service.NewExerciseService(store, nil, nil), logger)

	r := chi.NewRouter()
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
		r.Post("/{id}/exercises", exerciseHandler.Add)
		r.Get("/{id}/logs", exerciseHandler.Logs)
	})
	return r
}
