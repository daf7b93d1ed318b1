package database

import (
	"fmt"
	"math"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/quizbank/pkg/models"
)

// Default number of history entries returned with progress stats.
const defaultHistoryLimit = 20

// Store bundles the four collection repositories over one database
// connection. It is constructed explicitly and passed to its consumers;
// multiple isolated instances can coexist (one per test, for example).
type Store struct {
	db          *sqlx.DB
	Questions   *QuestionRepository
	Performance *PerformanceRepository
	Results     *QuizResultRepository
	Settings    *SettingsRepository
}

// NewStore creates a store over an open database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:          db,
		Questions:   NewQuestionRepository(db),
		Performance: NewPerformanceRepository(db),
		Results:     NewQuizResultRepository(db),
		Settings:    NewSettingsRepository(db),
	}
}

// Open connects to the database and returns a store over it.
func Open(driver, dsn string) (*Store, error) {
	db, err := Connect(driver, dsn)
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddQuestions bulk-inserts candidate questions, counting accepted and
// rejected records without aborting the batch.
func (s *Store) AddQuestions(questions []models.Question) (models.ImportSummary, error) {
	return s.Questions.AddQuestions(questions)
}

// QuestionsWithPerformance returns every question paired with its
// performance counters. Questions that were never asked carry a synthetic
// zero record, so callers never have to special-case missing history.
func (s *Store) QuestionsWithPerformance() ([]models.QuestionPerformance, error) {
	var rows []models.QuestionPerformance
	query := `
		SELECT q.*,
		       COALESCE(p.times_asked, 0) AS times_asked,
		       COALESCE(p.times_correct, 0) AS times_correct
		FROM questions q
		LEFT JOIN performance p ON p.question_id = q.id
		ORDER BY q.id
	`
	if err := s.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get questions with performance: %v", err)
	}
	return rows, nil
}

// RecordAnswer marks one completed ask of a question: the performance
// counters are incremented and the question's last-asked timestamp is
// refreshed. The two writes touch different collections and are not atomic
// as a pair; a crash in between leaves the performance updated and the
// timestamp stale.
func (s *Store) RecordAnswer(questionID int64, correct bool, now time.Time) error {
	if err := s.Performance.Increment(questionID, correct, now); err != nil {
		return err
	}
	return s.Questions.TouchLastAsked(questionID, now)
}

// SaveQuizResult appends one quiz result record.
func (s *Store) SaveQuizResult(result *models.QuizResult) error {
	return s.Results.Create(result)
}

// ProgressStats aggregates bank-wide coverage and accuracy plus recent
// quiz history.
func (s *Store) ProgressStats() (*models.ProgressStats, error) {
	totalQuestions, err := s.Questions.Count()
	if err != nil {
		return nil, err
	}
	totalAsked, totalCorrect, err := s.Performance.Totals()
	if err != nil {
		return nil, err
	}
	history, err := s.Results.Recent(defaultHistoryLimit)
	if err != nil {
		return nil, err
	}

	stats := &models.ProgressStats{
		TotalQuestions: totalQuestions,
		TotalAsked:     totalAsked,
		TotalCorrect:   totalCorrect,
		QuizHistory:    history,
	}
	if totalQuestions > 0 {
		coverage := int(math.Round(float64(totalAsked) / float64(totalQuestions) * 100))
		if coverage > 100 {
			coverage = 100
		}
		stats.Coverage = coverage
	}
	if totalAsked > 0 {
		stats.Accuracy = int(math.Round(float64(totalCorrect) / float64(totalAsked) * 100))
	}
	return stats, nil
}

// Reset deletes every record from all four collections.
func (s *Store) Reset() error {
	for _, table := range []string{"performance", "quiz_results", "settings", "questions"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %v", table, err)
		}
	}
	return nil
}
