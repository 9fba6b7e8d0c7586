package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack/internal/handler/dto"
	"github.com/fittrack/fittrack/internal/service"
)

// ExerciseHandler handles HTTP requests for exercise operations.
type ExerciseHandler struct {
	svc    *service.ExerciseService
	logger *slog.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(svc *service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		svc:    svc,
		logger: logger,
	}
}

// Add handles POST /api/users/{id}/exercises.
func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	fields, err := parseBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.svc.AddExercise(r.Context(), service.AddExerciseInput{
		UserID:      chi.URLParam(r, "id"),
		Description: fields["description"],
		Duration:    fields["duration"],
		Date:        fields["date"],
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("exercise_added",
		"user_id", out.User.ID,
		"exercise_id", out.Exercise.ID,
		"duration", out.Exercise.Duration,
	)

	writeJSON(w, http.StatusOK, dto.ToAddExerciseResponse(out))
}

// Logs handles GET /api/users/{id}/logs.
func (h *ExerciseHandler) Logs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	log, err := h.svc.GetLog(r.Context(), service.LogQuery{
		UserID: chi.URLParam(r, "id"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLogResponse(log))
}

// handleServiceError maps service errors to HTTP responses.
func (h *ExerciseHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Description and duration are required")
	case errors.Is(err, service.ErrInvalidDuration):
		writeError(w, http.StatusBadRequest, "Duration must be a number")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
