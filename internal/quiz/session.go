package quiz

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/example/quizbank/pkg/models"
)

// Defaults for one quiz session.
const (
	DefaultQuestionCount = 25
	DefaultCountdown     = 10 * time.Minute
)

// SessionStore is the slice of the persistent store a session needs.
type SessionStore interface {
	QuestionsWithPerformance() ([]models.QuestionPerformance, error)
	RecordAnswer(questionID int64, correct bool, now time.Time) error
	SaveQuizResult(result *models.QuizResult) error
}

// CooldownGate decides whether a new quiz may start and is told when one
// completes.
type CooldownGate interface {
	IsReady(now time.Time) bool
	TimeRemaining(now time.Time) time.Duration
	RecordQuizTaken(now time.Time) error
}

// SessionConfig carries per-session tunables. Zero values fall back to the
// package defaults.
type SessionConfig struct {
	QuestionCount int
	Countdown     time.Duration
	Weights       ScoreWeights
	Category      string
	// Rand drives sampling; nil means time-seeded.
	Rand *rand.Rand
	// Clock supplies "now" for the countdown-forced submit; nil means time.Now.
	Clock func() time.Time
	// OnExpire, if set, receives the summary produced when the countdown
	// forces a submit.
	OnExpire func(*Summary, error)
}

// Review is the per-question breakdown of a submitted session.
type Review struct {
	QuestionID    int64  `json:"question_id"`
	Text          string `json:"text"`
	UserAnswer    string `json:"user_answer"` // empty when unanswered
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// Summary is everything a submitted session produced.
type Summary struct {
	Result  models.QuizResult `json:"result"`
	Reviews []Review          `json:"reviews"`
}

const (
	stateActive = iota
	stateClosed
)

// Session is the short-lived state machine for one quiz attempt. It holds
// the sampled questions and the user's in-progress answers; nothing is
// persisted until Submit. At most one session is active at a time.
type Session struct {
	mu        sync.Mutex
	store     SessionStore
	gate      CooldownGate
	clock     func() time.Time
	onExpire  func(*Summary, error)
	category  string
	questions []models.Question
	ids       map[int64]struct{}
	answers   map[int64]string
	startedAt time.Time
	deadline  time.Time
	index     int
	state     int
	timer     *time.Timer
}

// StartSession samples questions and opens a new session.
//
// It is refused with a NotReadyError carrying the remaining wait when the
// cooldown has not elapsed, and with ErrEmptyBank when no questions are
// stored. On success the countdown is armed; its expiry forces Submit with
// whatever answers exist at that instant.
func StartSession(store SessionStore, gate CooldownGate, cfg SessionConfig, now time.Time) (*Session, error) {
	if !gate.IsReady(now) {
		return nil, &NotReadyError{Remaining: gate.TimeRemaining(now)}
	}

	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = DefaultQuestionCount
	}
	if cfg.Countdown <= 0 {
		cfg.Countdown = DefaultCountdown
	}
	if cfg.Weights == (ScoreWeights{}) {
		cfg.Weights = DefaultScoreWeights()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	bank, err := store.QuestionsWithPerformance()
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %v", err)
	}
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}

	questions := NewSampler(cfg.Weights, cfg.Rand).Select(bank, cfg.QuestionCount)

	s := &Session{
		store:     store,
		gate:      gate,
		clock:     cfg.Clock,
		onExpire:  cfg.OnExpire,
		category:  cfg.Category,
		questions: questions,
		ids:       make(map[int64]struct{}, len(questions)),
		answers:   make(map[int64]string),
		startedAt: now,
		deadline:  now.Add(cfg.Countdown),
		state:     stateActive,
	}
	for _, q := range questions {
		s.ids[q.ID] = struct{}{}
	}
	s.timer = time.AfterFunc(cfg.Countdown, s.expire)
	return s, nil
}

// Questions returns the sampled question sequence in presentation order.
func (s *Session) Questions() []models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Active reports whether the session still accepts answers.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateActive
}

// StartedAt returns the session start timestamp.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Deadline returns the instant the countdown forces a submit.
func (s *Session) Deadline() time.Time { return s.deadline }

// Remaining returns how much countdown is left at now, never negative.
func (s *Session) Remaining(now time.Time) time.Duration {
	left := s.deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Answer records the user's choice for a sampled question. Re-answering
// overwrites the prior choice; answering never changes session state.
func (s *Session) Answer(questionID int64, option string) error {
	option = strings.ToUpper(strings.TrimSpace(option))
	if !models.IsValidOption(option) {
		return ErrInvalidOption
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateActive {
		return ErrSessionClosed
	}
	if _, ok := s.ids[questionID]; !ok {
		return ErrQuestionNotInSession
	}
	s.answers[questionID] = option
	return nil
}

// Answered returns the recorded choice for a question, if any.
func (s *Session) Answered(questionID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	option, ok := s.answers[questionID]
	return option, ok
}

// Progress returns how many questions have an answer recorded.
func (s *Session) Progress() (answered, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers), len(s.questions)
}

// CurrentIndex returns the index of the question being presented.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// GoTo moves presentation to the question at index i if it exists.
func (s *Session) GoTo(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.questions) {
		s.index = i
	}
}

// Next advances presentation to the next question, if any.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.questions)-1 {
		s.index++
	}
}

// Prev moves presentation back one question, if possible.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index > 0 {
		s.index--
	}
}

// Submit grades the session, persists its effects and closes it.
//
// Every sampled question is graded, with a missing answer counting as
// incorrect. Performance counters are updated independently per question,
// then exactly one quiz result is written, then the cooldown gate is told a
// quiz was taken. There is no rollback: when any step fails the summary is
// still returned together with a PartialUpdateError naming the steps that
// succeeded. Submission is terminal.
func (s *Session) Submit(now time.Time) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateActive {
		return nil, ErrSessionClosed
	}
	s.state = stateClosed
	if s.timer != nil {
		s.timer.Stop()
	}

	score := 0
	reviews := make([]Review, 0, len(s.questions))
	var updated []int64
	failed := make(map[int64]error)

	for _, q := range s.questions {
		answer := s.answers[q.ID]
		correct := answer != "" && strings.EqualFold(answer, q.CorrectOption)
		if correct {
			score++
		}
		reviews = append(reviews, Review{
			QuestionID:    q.ID,
			Text:          q.Text,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectOption,
			Correct:       correct,
			Explanation:   q.Explanation,
		})
		if err := s.store.RecordAnswer(q.ID, correct, now); err != nil {
			failed[q.ID] = err
		} else {
			updated = append(updated, q.ID)
		}
	}

	total := len(s.questions)
	result := models.QuizResult{
		CompletedAt: now,
		Score:       score,
		Total:       total,
		Percentage:  int(math.Round(float64(score) / float64(total) * 100)),
		DurationSec: int(now.Sub(s.startedAt).Seconds()),
		Category:    s.category,
	}
	resultErr := s.store.SaveQuizResult(&result)

	gateErr := s.gate.RecordQuizTaken(now)

	summary := &Summary{Result: result, Reviews: reviews}
	if len(failed) > 0 || resultErr != nil {
		return summary, &PartialUpdateError{Updated: updated, Failed: failed, ResultErr: resultErr}
	}
	if gateErr != nil {
		return summary, fmt.Errorf("failed to record quiz time: %v", gateErr)
	}
	return summary, nil
}

// Abandon discards the session without writing anything. The countdown is
// disarmed; performance and results are untouched.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateActive {
		return
	}
	s.state = stateClosed
	if s.timer != nil {
		s.timer.Stop()
	}
}

// expire is the countdown callback: it forces a submit with whatever
// answers exist and hands the outcome to OnExpire.
func (s *Session) expire() {
	summary, err := s.Submit(s.clock())
	if errors.Is(err, ErrSessionClosed) {
		// Submit or Abandon won the race.
		return
	}
	if s.onExpire != nil {
		s.onExpire(summary, err)
	}
}
