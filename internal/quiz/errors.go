package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyBank is returned when a session is started with no questions stored.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrSessionClosed is returned when acting on a submitted or abandoned session.
	ErrSessionClosed = errors.New("quiz session already closed")
	// ErrQuestionNotInSession is returned when answering a question id that was not sampled.
	ErrQuestionNotInSession = errors.New("question is not part of this session")
	// ErrInvalidOption is returned when an answer is not one of A-D.
	ErrInvalidOption = errors.New("answer must be one of A, B, C or D")
)

// NotReadyError reports that a session start was refused because the
// cooldown has not elapsed yet.
type NotReadyError struct {
	Remaining time.Duration
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("quiz cooldown active, %s remaining", e.Remaining.Round(time.Second))
}

// PartialUpdateError reports a submit sequence that failed partway. The
// per-question updates that already went through are not rolled back; the
// caller sees exactly which steps succeeded and decides how to surface it.
type PartialUpdateError struct {
	// Updated holds question ids whose performance write succeeded.
	Updated []int64
	// Failed maps question ids to their write errors.
	Failed map[int64]error
	// ResultErr is non-nil when the quiz result write itself failed.
	ResultErr error
}

func (e *PartialUpdateError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Failed) > 0 {
		parts = append(parts, fmt.Sprintf("%d of %d performance updates failed",
			len(e.Failed), len(e.Failed)+len(e.Updated)))
	}
	if e.ResultErr != nil {
		parts = append(parts, fmt.Sprintf("result write failed: %v", e.ResultErr))
	}
	if len(parts) == 0 {
		return "partial update"
	}
	return "quiz submit incomplete: " + strings.Join(parts, "; ")
}
