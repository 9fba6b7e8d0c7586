package service

import (
	"context"
	"errors"
	"testing"
)

func TestUserService_CreateUser(t *testing.T) {
	store := &fakeStore{}
	svc := NewUserService(store, nil, nil)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "alice"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.ID == "" {
		t.Error("expected a generated ID")
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %q", user.Username)
	}

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != user.ID {
		t.Errorf("expected created user to be listed, got %v", users)
	}
}

func TestUserService_CreateUser_MissingUsername(t *testing.T) {
	store := &fakeStore{}
	svc := NewUserService(store, nil, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{})
	if !errors.Is(err, ErrUsernameRequired) {
		t.Fatalf("expected ErrUsernameRequired, got %v", err)
	}

	// Validation failures must never persist a record.
	if len(store.users) != 0 {
		t.Errorf("expected no users persisted, got %d", len(store.users))
	}
}

func TestUserService_CreateUser_UniqueIDs(t *testing.T) {
	store := &fakeStore{}
	svc := NewUserService(store, nil, nil)

	first, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "alice"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	second, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "alice"})
	if err != nil {
		t.Fatalf("CreateUser (duplicate username) failed: %v", err)
	}

	// No uniqueness constraint on usernames, only on IDs.
	if first.ID == second.ID {
		t.Error("expected distinct IDs for users with the same username")
	}
}

func TestUserService_CreateUser_PrimesCache(t *testing.T) {
	store := &fakeStore{}
	userCache := newFakeCache()
	svc := NewUserService(store, userCache, nil)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "alice"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if userCache.usernames[user.ID] != "alice" {
		t.Error("expected username to be cached on creation")
	}
}

func TestUserService_CreateUser_StoreFailure(t *testing.T) {
	store := &fakeStore{failWith: errStoreDown}
	svc := NewUserService(store, nil, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "alice"})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
