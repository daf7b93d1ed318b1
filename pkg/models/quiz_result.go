package models

import "time"

// QuizResult records the outcome of one completed quiz session.
// Results are immutable once created; history is append-only.
type QuizResult struct {
	ID          int64     `json:"id" db:"id"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
	Score       int       `json:"score" db:"score"`
	Total       int       `json:"total" db:"total"`
	Percentage  int       `json:"percentage" db:"percentage"`
	DurationSec int       `json:"duration_seconds" db:"duration_seconds"` // Duration in seconds
	Category    string    `json:"category" db:"category"`
}
