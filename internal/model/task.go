package model

import "time"

// Task is the domain model for a todo entry.
// IDs are assigned by the store and never reused within a data file.
type Task struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Done      bool       `json:"done"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
