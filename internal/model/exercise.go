package model

import "time"

// DateLayout is the public calendar-date format used in API responses,
// e.g. "Sun Jan 15 2023".
const DateLayout = "Mon Jan 02 2006"

// Exercise represents a single logged exercise entry.
// UserID references a User that existed at creation time; the schema
// does not enforce the relation.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateString renders the exercise date in the public calendar-date format.
// Dates are stored in UTC, so formatting is done in UTC as well.
func (e *Exercise) DateString() string {
	return e.Date.UTC().Format(DateLayout)
}
