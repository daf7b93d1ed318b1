package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// OptionLetters are the valid answer options for a question.
var OptionLetters = []string{"A", "B", "C", "D"}

// Question represents a multiple-choice question in the bank
type Question struct {
	ID            int64        `json:"id" db:"id"`
	Text          string       `json:"text" db:"text"`
	OptionA       string       `json:"option_a" db:"option_a"`
	OptionB       string       `json:"option_b" db:"option_b"`
	OptionC       string       `json:"option_c" db:"option_c"`
	OptionD       string       `json:"option_d" db:"option_d"`
	CorrectOption string       `json:"correct_option" db:"correct_option"` // One of A-D
	Explanation   string       `json:"explanation" db:"explanation"`
	Category      string       `json:"category" db:"category"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	LastAsked     sql.NullTime `json:"last_asked" db:"last_asked"` // Null until first asked
}

// Option returns the option text for a letter, or empty string for an unknown letter.
func (q *Question) Option(letter string) string {
	switch strings.ToUpper(letter) {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// Validate checks that the question has all required fields and a valid correct option.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is required")
	}
	for _, letter := range OptionLetters {
		if strings.TrimSpace(q.Option(letter)) == "" {
			return fmt.Errorf("option %s is required", letter)
		}
	}
	if !IsValidOption(q.CorrectOption) {
		return fmt.Errorf("correct option must be one of A-D, got %q", q.CorrectOption)
	}
	return nil
}

// IsValidOption reports whether letter is one of the four answer options.
func IsValidOption(letter string) bool {
	switch strings.ToUpper(letter) {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
