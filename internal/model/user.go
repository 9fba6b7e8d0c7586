// Package model defines domain entities for the application.
package model

import "time"

// User represents an account that exercises are logged against.
// Usernames are not unique; identity is the opaque ID.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
