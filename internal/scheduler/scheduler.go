// Package scheduler gates how often a new quiz may start and periodically
// suggests one when the user is due.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Defaults for the cooldown state machine.
const (
	DefaultCooldown = 2 * time.Hour
	DefaultInterval = 1 * time.Hour
)

// Settings keys for the two persisted scheduling timestamps.
const (
	SettingLastQuizTime = "lastQuizTime"
	SettingNextQuizTime = "nextQuizTime"
)

// Notifier receives the advisory "quiz suggested" signal. It never starts
// a quiz itself; the UI decides whether to open a session.
type Notifier interface {
	QuizSuggested(now time.Time)
}

// SettingsStore persists the scheduler's two timestamps.
type SettingsStore interface {
	Timestamp(key string) (*time.Time, error)
	SetTimestamp(key string, t time.Time) error
}

// Config carries scheduler tunables; zero values fall back to defaults.
type Config struct {
	// Cooldown is the mandatory wait between quiz completions.
	Cooldown time.Duration
	// Interval is how far ahead the next quiz is recommended while Ready.
	Interval time.Duration
	// Clock supplies "now"; nil means time.Now. Tests inject a fake clock.
	Clock func() time.Time
}

// Scheduler tracks the last completed quiz and computes when the next one
// is allowed and recommended. State lives in two persisted timestamps; the
// Ready/Cooldown distinction is derived from wall-clock comparisons.
type Scheduler struct {
	mu              sync.Mutex
	settings        SettingsStore
	notifier        Notifier
	cooldown        time.Duration
	interval        time.Duration
	now             func() time.Time
	lastQuiz        *time.Time
	nextRecommended time.Time
	cron            *gocron.Scheduler
}

// New builds a scheduler, loading any persisted timestamps.
func New(settings SettingsStore, notifier Notifier, cfg Config) (*Scheduler, error) {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	s := &Scheduler{
		settings: settings,
		notifier: notifier,
		cooldown: cfg.Cooldown,
		interval: cfg.Interval,
		now:      cfg.Clock,
	}

	last, err := settings.Timestamp(SettingLastQuizTime)
	if err != nil {
		return nil, fmt.Errorf("failed to load last quiz time: %v", err)
	}
	s.lastQuiz = last

	next, err := settings.Timestamp(SettingNextQuizTime)
	if err != nil {
		return nil, fmt.Errorf("failed to load next quiz time: %v", err)
	}
	if next != nil {
		s.nextRecommended = *next
	} else if err := s.recalculateLocked(s.now()); err != nil {
		return nil, err
	}
	return s, nil
}

// IsReady reports whether a quiz may start at now.
func (s *Scheduler) IsReady(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isReadyLocked(now)
}

func (s *Scheduler) isReadyLocked(now time.Time) bool {
	return s.lastQuiz == nil || now.Sub(*s.lastQuiz) >= s.cooldown
}

// TimeRemaining returns how much cooldown is left at now, zero when Ready.
func (s *Scheduler) TimeRemaining(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeRemainingLocked(now)
}

func (s *Scheduler) timeRemainingLocked(now time.Time) time.Duration {
	if s.lastQuiz == nil {
		return 0
	}
	remaining := s.cooldown - now.Sub(*s.lastQuiz)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NextRecommended returns the current recommendation timestamp.
func (s *Scheduler) NextRecommended() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRecommended
}

// Cooldown returns the configured cooldown duration.
func (s *Scheduler) Cooldown() time.Duration { return s.cooldown }

// RecordQuizTaken marks a quiz as completed at now and recalculates the
// recommendation clock.
func (s *Scheduler) RecordQuizTaken(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := now
	s.lastQuiz = &taken
	if err := s.settings.SetTimestamp(SettingLastQuizTime, taken); err != nil {
		return fmt.Errorf("failed to persist last quiz time: %v", err)
	}
	return s.recalculateLocked(now)
}

// recalculateLocked recomputes nextRecommendedTime: while Ready it is one
// full interval away, while in Cooldown it is exactly when the cooldown
// ends.
func (s *Scheduler) recalculateLocked(now time.Time) error {
	if s.isReadyLocked(now) {
		s.nextRecommended = now.Add(s.interval)
	} else {
		s.nextRecommended = now.Add(s.timeRemainingLocked(now))
	}
	if err := s.settings.SetTimestamp(SettingNextQuizTime, s.nextRecommended); err != nil {
		return fmt.Errorf("failed to persist next quiz time: %v", err)
	}
	return nil
}

// CheckNow compares a freshly sampled now against the recommendation
// clock. When the recommendation is due and the cooldown has elapsed the
// notifier is signalled; when the cooldown has not elapsed the
// recommendation is rescheduled silently. The check never starts a quiz.
func (s *Scheduler) CheckNow() {
	now := s.now()

	s.mu.Lock()
	if now.Before(s.nextRecommended) {
		s.mu.Unlock()
		return
	}
	ready := s.isReadyLocked(now)
	if err := s.recalculateLocked(now); err != nil {
		log.Printf("Error recalculating next quiz time: %v", err)
	}
	s.mu.Unlock()

	if ready && s.notifier != nil {
		s.notifier.QuizSuggested(now)
	}
}

// Start begins the once-per-minute background check.
func (s *Scheduler) Start() error {
	cron := gocron.NewScheduler(time.UTC)
	if _, err := cron.Every(1).Minute().Do(s.CheckNow); err != nil {
		return fmt.Errorf("failed to schedule quiz check: %v", err)
	}
	cron.StartAsync()
	s.cron = cron
	return nil
}

// Stop terminates the background check.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
