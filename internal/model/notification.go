package model

import "time"

// Notification is a transient per-user message, the server analog of a
// toast. Notifications expire instead of persisting.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
