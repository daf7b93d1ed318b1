package models

import "database/sql"

// PerformanceRecord tracks historical ask/correct counters for one question.
// A record is created lazily the first time its question is asked; absence
// means "never asked", not zero counters.
type PerformanceRecord struct {
	QuestionID   int64        `json:"question_id" db:"question_id"`
	TimesAsked   int          `json:"times_asked" db:"times_asked"`
	TimesCorrect int          `json:"times_correct" db:"times_correct"`
	LastAttempt  sql.NullTime `json:"last_attempt" db:"last_attempt"`
}

// Accuracy returns the fraction of asks answered correctly, 0 if never asked.
func (p *PerformanceRecord) Accuracy() float64 {
	if p.TimesAsked == 0 {
		return 0
	}
	return float64(p.TimesCorrect) / float64(p.TimesAsked)
}

// QuestionPerformance pairs a question with its (possibly synthetic zero)
// performance counters, as returned by the store's joined query.
type QuestionPerformance struct {
	Question
	TimesAsked   int `json:"times_asked" db:"times_asked"`
	TimesCorrect int `json:"times_correct" db:"times_correct"`
}
