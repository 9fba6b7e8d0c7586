package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

func postExercise(t *testing.T, router http.Handler, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/exercises", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestExerciseHandler_Add(t *testing.T) {
	store := &memStore{}
	user := store.addUser("u1", "alice")
	router := newTestRouter(store)

	rec := postExercise(t, router, user.ID, `{"description":"run","duration":"30","date":"2023-01-15"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Username    string `json:"username"`
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		Date        string `json:"date"`
		ID          string `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Username != "alice" {
		t.Errorf("expected username alice, got %q", response.Username)
	}
	if response.Description != "run" {
		t.Errorf("expected description run, got %q", response.Description)
	}
	if response.Duration != 30 {
		t.Errorf("expected duration 30, got %d", response.Duration)
	}
	if response.Date != "Sun Jan 15 2023" {
		t.Errorf("expected date 'Sun Jan 15 2023', got %q", response.Date)
	}
	// The id field echoes the user's id, not the exercise's.
	if response.ID != user.ID {
		t.Errorf("expected id %q (the user's), got %q", user.ID, response.ID)
	}
}

func TestExerciseHandler_Add_NumericDuration(t *testing.T) {
	store := &memStore{}
	user := store.addUser("u1", "alice")
	router := newTestRouter(store)

	// JSON clients may send duration as a number instead of text.
	rec := postExercise(t, router, user.ID, `{"description":"run","duration":30}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.exercises) != 1 || store.exercises[0].Duration != 30 {
		t.Errorf("expected persisted duration 30, got %+v", store.exercises)
	}
}

func TestExerciseHandler_Add_UnknownUser(t *testing.T) {
	store := &memStore{}
	router := newTestRouter(store)

	rec := postExercise(t, router, "missing", `{"description":"run","duration":"30"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "User not found" {
		t.Errorf("unexpected error message: %q", response["error"])
	}
}

func TestExerciseHandler_Add_ValidationErrors(t *testing.T) {
	store := &memStore{}
	user := store.addUser("u1", "alice")
	router := newTestRouter(store)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing description", `{"duration":"30"}`, "Description and duration are required"},
		{"missing duration", `{"description":"run"}`, "Description and duration are required"},
		{"non numeric duration", `{"description":"run","duration":"abc"}`, "Duration must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postExercise(t, router, user.ID, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["error"] != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, response["error"])
			}
		})
	}

	if len(store.exercises) != 0 {
		t.Errorf("expected no exercises persisted, got %d", len(store.exercises))
	}
}

func TestExerciseHandler_Add_FormEncoded(t *testing.T) {
	store := &memStore{}
	user := store.addUser("u1", "alice")
	router := newTestRouter(store)

	form := url.Values{
		"description": {"swim"},
		"duration":    {"45"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+user.ID+"/exercises", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.exercises) != 1 || store.exercises[0].Description != "swim" {
		t.Errorf("unexpected persisted exercises: %+v", store.exercises)
	}
}

func TestExerciseHandler_Logs(t *testing.T) {
	store := &memStore{}
	user := store.addUser("u1", "alice")
	router := newTestRouter(store)

	for _, date := range []string{"2023-01-01", "2023-01-15", "2023-01-16"} {
		rec := postExercise(t, router, user.ID, `{"description":"run","duration":"30","date":"`+date+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed to add exercise: %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID+"/logs?from=2023-01-01&to=2023-01-15&limit=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Username string `json:"username"`
		Count    int    `json:"count"`
		ID       string `json:"id"`
		Log      []struct {
			Description string `json:"description"`
			Duration    int    `json:"duration"`
			Date        string `json:"date"`
		} `json:"log"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Username != "alice" || response.ID != user.ID {
		t.Errorf("unexpected user fields: %q, %q", response.Username, response.ID)
	}
	// Count reflects the post-limit size, not the total matches.
	if response.Count != 1 || len(response.Log) != 1 {
		t.Fatalf("expected count 1 and 1 entry, got count %d with %d entries", response.Count, len(response.Log))
	}
	if response.Log[0].Date != "Sun Jan 01 2023" {
		t.Errorf("expected earliest entry in window, got %q", response.Log[0].Date)
	}
}

func TestExerciseHandler_Logs_DateRoundTrip(t *testing.T) {
	store := &memStore{}
	user := store.addUser("u1", "alice")
	router := newTestRouter(store)

	rec := postExercise(t, router, user.ID, `{"description":"run","duration":"30","date":"2023-01-15"}`)
	var added struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&added); err != nil {
		t.Fatalf("failed to decode add response: %v", err)
	}

	logReq := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID+"/logs", nil)
	logRec := httptest.NewRecorder()
	router.ServeHTTP(logRec, logReq)

	var logResponse struct {
		Log []struct {
			Date string `json:"date"`
		} `json:"log"`
	}
	if err := json.NewDecoder(logRec.Body).Decode(&logResponse); err != nil {
		t.Fatalf("failed to decode log response: %v", err)
	}
	if len(logResponse.Log) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(logResponse.Log))
	}
	// The same stored date renders identically in both endpoints.
	if logResponse.Log[0].Date != added.Date {
		t.Errorf("date mismatch: add returned %q, log returned %q", added.Date, logResponse.Log[0].Date)
	}
}

func TestExerciseHandler_Logs_BadParamsIgnored(t *testing.T) {
	store := &memStore{}
	user := store.addUser("u1", "alice")
	store.exercises = append(store.exercises, &model.Exercise{
		ID:          "e1",
		UserID:      user.ID,
		Description: "run",
		Duration:    30,
		Date:        time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID+"/logs?from=banana&to=cherry&limit=lots", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected bad params to be ignored, got %d", rec.Code)
	}

	var response struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 1 {
		t.Errorf("expected count 1, got %d", response.Count)
	}
}

func TestExerciseHandler_Logs_UnknownUser(t *testing.T) {
	store := &memStore{}
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing/logs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
