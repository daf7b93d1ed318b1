package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/quizbank/pkg/models"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository creates a new repository instance
func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// GetAll returns all questions
func (r *QuestionRepository) GetAll() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Select(&questions, "SELECT * FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %v", err)
	}
	return questions, nil
}

// GetByID returns a question by ID
func (r *QuestionRepository) GetByID(id int64) (*models.Question, error) {
	var question models.Question
	err := r.db.Get(&question, "SELECT * FROM questions WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get question by ID: %v", err)
	}
	return &question, nil
}

// GetByCategory returns all questions with the given category label.
func (r *QuestionRepository) GetByCategory(category string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Select(&questions, "SELECT * FROM questions WHERE category = $1 ORDER BY id", category)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions by category: %v", err)
	}
	return questions, nil
}

// Count returns the total number of questions in the bank
func (r *QuestionRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, "SELECT COUNT(*) FROM questions")
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %v", err)
	}
	return count, nil
}

// Create inserts a new question and assigns its ID
func (r *QuestionRepository) Create(question *models.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	if question.Category == "" {
		question.Category = "general"
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO questions (text, option_a, option_b, option_c, option_d, correct_option, explanation, category, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`
		return r.db.QueryRow(
			query,
			question.Text,
			question.OptionA,
			question.OptionB,
			question.OptionC,
			question.OptionD,
			question.CorrectOption,
			question.Explanation,
			question.Category,
			question.CreatedAt,
		).Scan(&question.ID)
	}

	// SQLite path (no RETURNING)
	query := `
		INSERT INTO questions (text, option_a, option_b, option_c, option_d, correct_option, explanation, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.Exec(
		query,
		question.Text,
		question.OptionA,
		question.OptionB,
		question.OptionC,
		question.OptionD,
		question.CorrectOption,
		question.Explanation,
		question.Category,
		question.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	question.ID = id
	return nil
}

// AddQuestions bulk-inserts a batch of candidate questions.
//
// Records are processed one at a time: a record that fails validation or
// insertion is counted as an error and skipped, it never aborts the batch.
// The whole batch runs in one transaction so readers of the questions
// collection never observe a partially visible batch.
func (r *QuestionRepository) AddQuestions(questions []models.Question) (models.ImportSummary, error) {
	var summary models.ImportSummary

	tx, err := r.db.Beginx()
	if err != nil {
		return summary, fmt.Errorf("failed to begin transaction: %v", err)
	}

	query := `
		INSERT INTO questions (text, option_a, option_b, option_c, option_d, correct_option, explanation, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i := range questions {
		q := &questions[i]
		if err := q.Validate(); err != nil {
			summary.Errors++
			continue
		}
		if q.Category == "" {
			q.Category = "general"
		}
		if q.CreatedAt.IsZero() {
			q.CreatedAt = time.Now()
		}
		_, err := tx.Exec(query,
			q.Text, q.OptionA, q.OptionB, q.OptionC, q.OptionD,
			q.CorrectOption, q.Explanation, q.Category, q.CreatedAt)
		if err != nil {
			summary.Errors++
			continue
		}
		summary.Added++
	}

	if err := tx.Commit(); err != nil {
		return models.ImportSummary{}, fmt.Errorf("failed to commit question batch: %v", err)
	}
	return summary, nil
}

// UpdateExplanation attaches or replaces a question's explanation text.
func (r *QuestionRepository) UpdateExplanation(id int64, explanation string) error {
	result, err := r.db.Exec("UPDATE questions SET explanation = $1 WHERE id = $2", explanation, id)
	if err != nil {
		return fmt.Errorf("failed to update explanation: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return fmt.Errorf("question %d not found", id)
	}
	return nil
}

// TouchLastAsked updates a question's last-asked timestamp.
func (r *QuestionRepository) TouchLastAsked(id int64, now time.Time) error {
	_, err := r.db.Exec("UPDATE questions SET last_asked = $1 WHERE id = $2", now, id)
	if err != nil {
		return fmt.Errorf("failed to update last asked: %v", err)
	}
	return nil
}
