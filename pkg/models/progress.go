package models

// ImportSummary reports how many records a bulk insert accepted and rejected.
type ImportSummary struct {
	Added  int `json:"added"`
	Errors int `json:"errors"`
}

// ProgressStats aggregates bank-wide coverage and accuracy.
//
// Coverage is round(100 * totalAsked / totalQuestions) clamped to 100;
// re-asked questions can push totalAsked past the bank size. Accuracy is
// round(100 * totalCorrect / totalAsked), or 0 when nothing was asked.
type ProgressStats struct {
	TotalQuestions int          `json:"total_questions"`
	TotalAsked     int          `json:"total_asked"`
	TotalCorrect   int          `json:"total_correct"`
	Coverage       int          `json:"coverage"`
	Accuracy       int          `json:"accuracy"`
	QuizHistory    []QuizResult `json:"quiz_history"`
}
