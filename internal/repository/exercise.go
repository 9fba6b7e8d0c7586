package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// ExerciseFilter defines filters for listing a user's exercises.
// From is an inclusive lower bound on the exercise date; Before is an
// exclusive upper bound. Limit caps the result count when positive.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	Before *time.Time
	Limit  int
}

// CreateExercise inserts a new exercise into the database.
func (r *Repository) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	query := `
		INSERT INTO exercises (id, user_id, description, duration, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil
}

// ListExercises retrieves a user's exercises sorted ascending by date,
// applying the filter's optional date bounds and limit.
func (r *Repository) ListExercises(ctx context.Context, filter ExerciseFilter) ([]*model.Exercise, error) {
	query, args := buildExerciseQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}

// buildExerciseQuery assembles the log query from the filter.
// Extracted so the SQL assembly can be tested without a database.
func buildExerciseQuery(filter ExerciseFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, user_id, description, duration, date, created_at
		FROM exercises
		WHERE user_id = $1
	`)

	args := []any{filter.UserID}
	argIndex := 2

	if filter.From != nil {
		fmt.Fprintf(&sb, " AND date >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.Before != nil {
		fmt.Fprintf(&sb, " AND date < $%d", argIndex)
		args = append(args, *filter.Before)
		argIndex++
	}

	sb.WriteString(" ORDER BY date, id")

	if filter.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	return sb.String(), args
}
