package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/quizbank/pkg/models"
)

// QuizResultRepository handles database operations for quiz results
type QuizResultRepository struct {
	db *sqlx.DB
}

// NewQuizResultRepository creates a new repository instance
func NewQuizResultRepository(db *sqlx.DB) *QuizResultRepository {
	return &QuizResultRepository{db: db}
}

// GetByID returns a quiz result by ID
func (r *QuizResultRepository) GetByID(id int64) (*models.QuizResult, error) {
	var result models.QuizResult
	err := r.db.Get(&result, "SELECT * FROM quiz_results WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz result: %v", err)
	}
	return &result, nil
}

// Recent returns up to limit results ordered by completion time descending
func (r *QuizResultRepository) Recent(limit int) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := r.db.Select(&results, "SELECT * FROM quiz_results ORDER BY completed_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz results: %v", err)
	}
	return results, nil
}

// Count returns the number of completed quizzes
func (r *QuizResultRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, "SELECT COUNT(*) FROM quiz_results")
	if err != nil {
		return 0, fmt.Errorf("failed to count quiz results: %v", err)
	}
	return count, nil
}

// Create appends a new quiz result and assigns its ID. Results are never
// updated or deleted afterwards.
func (r *QuizResultRepository) Create(result *models.QuizResult) error {
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}
	if result.Category == "" {
		result.Category = "general"
	}

	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO quiz_results (completed_at, score, total, percentage, duration_seconds, category)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		return r.db.QueryRow(
			query,
			result.CompletedAt,
			result.Score,
			result.Total,
			result.Percentage,
			result.DurationSec,
			result.Category,
		).Scan(&result.ID)
	}

	// SQLite path (no RETURNING)
	query := `
		INSERT INTO quiz_results (completed_at, score, total, percentage, duration_seconds, category)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.Exec(
		query,
		result.CompletedAt,
		result.Score,
		result.Total,
		result.Percentage,
		result.DurationSec,
		result.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz result: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	result.ID = id
	return nil
}
