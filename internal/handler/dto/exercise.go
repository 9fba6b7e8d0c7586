package dto

import (
	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/service"
)

// AddExerciseResponse represents the response for adding an exercise.
// The id field carries the user's id, not the exercise's; clients depend
// on this shape.
type AddExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

// LogEntry represents one exercise inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse represents a user's exercise log.
// Count always equals len(Log), the post-limit size.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"id"`
	Log      []LogEntry `json:"log"`
}

// ToAddExerciseResponse shapes the add-exercise output for the API.
func ToAddExerciseResponse(out *service.AddExerciseOutput) *AddExerciseResponse {
	return &AddExerciseResponse{
		Username:    out.User.Username,
		Description: out.Exercise.Description,
		Duration:    out.Exercise.Duration,
		Date:        out.Exercise.DateString(),
		ID:          out.User.ID,
	}
}

// ToLogEntry projects an exercise to its log representation.
func ToLogEntry(exercise *model.Exercise) LogEntry {
	return LogEntry{
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
	}
}

// ToLogResponse shapes a log query result for the API.
func ToLogResponse(log *service.Log) *LogResponse {
	entries := make([]LogEntry, len(log.Exercises))
	for i, exercise := range log.Exercises {
		entries[i] = ToLogEntry(exercise)
	}
	return &LogResponse{
		Username: log.User.Username,
		Count:    len(entries),
		ID:       log.User.ID,
		Log:      entries,
	}
}
