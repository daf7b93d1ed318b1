package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/quizbank/pkg/models"
)

// PerformanceRepository handles database operations for performance records
type PerformanceRepository struct {
	db *sqlx.DB
}

// NewPerformanceRepository creates a new repository instance
func NewPerformanceRepository(db *sqlx.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// Get returns the performance record for a question, or nil if the question
// has never been asked. Absence is meaningful and is not an error.
func (r *PerformanceRepository) Get(questionID int64) (*models.PerformanceRecord, error) {
	var record models.PerformanceRecord
	err := r.db.Get(&record, "SELECT * FROM performance WHERE question_id = $1", questionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get performance record: %v", err)
	}
	return &record, nil
}

// GetAll returns every existing performance record
func (r *PerformanceRepository) GetAll() ([]models.PerformanceRecord, error) {
	var records []models.PerformanceRecord
	err := r.db.Select(&records, "SELECT * FROM performance ORDER BY question_id")
	if err != nil {
		return nil, fmt.Errorf("failed to get performance records: %v", err)
	}
	return records, nil
}

// Count returns the number of questions that have been asked at least once
func (r *PerformanceRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, "SELECT COUNT(*) FROM performance")
	if err != nil {
		return 0, fmt.Errorf("failed to count performance records: %v", err)
	}
	return count, nil
}

// Increment bumps a question's counters after one completed ask, creating
// the record lazily on first ask.
func (r *PerformanceRepository) Increment(questionID int64, correct bool, now time.Time) error {
	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	query := `
		INSERT INTO performance (question_id, times_asked, times_correct, last_attempt)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (question_id) DO UPDATE SET
			times_asked = performance.times_asked + 1,
			times_correct = performance.times_correct + excluded.times_correct,
			last_attempt = excluded.last_attempt
	`
	if _, err := r.db.Exec(query, questionID, correctDelta, now); err != nil {
		return fmt.Errorf("failed to update performance for question %d: %v", questionID, err)
	}
	return nil
}

// Totals returns the summed ask/correct counters across all records
func (r *PerformanceRepository) Totals() (asked, correct int, err error) {
	row := struct {
		Asked   int `db:"asked"`
		Correct int `db:"correct"`
	}{}
	err = r.db.Get(&row, `
		SELECT COALESCE(SUM(times_asked), 0) AS asked,
		       COALESCE(SUM(times_correct), 0) AS correct
		FROM performance
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum performance totals: %v", err)
	}
	return row.Asked, row.Correct, nil
}
