package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSettings is an in-memory SettingsStore.
type memSettings struct {
	values map[string]time.Time
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]time.Time)}
}

func (m *memSettings) Timestamp(key string) (*time.Time, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m *memSettings) SetTimestamp(key string, t time.Time) error {
	m.values[key] = t
	return nil
}

// spyNotifier records every suggestion signal.
type spyNotifier struct {
	suggested []time.Time
}

func (n *spyNotifier) QuizSuggested(now time.Time) {
	n.suggested = append(n.suggested, now)
}

// fakeClock is a settable clock for deterministic time-travel tests.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time          { return c.current }
func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

var t0 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T, settings SettingsStore, notifier Notifier, clock *fakeClock) *Scheduler {
	t.Helper()
	s, err := New(settings, notifier, Config{Clock: clock.Now})
	require.NoError(t, err)
	return s
}

func TestFreshSchedulerIsReady(t *testing.T) {
	clock := &fakeClock{current: t0}
	s := newTestScheduler(t, newMemSettings(), nil, clock)

	assert.True(t, s.IsReady(t0))
	assert.Equal(t, time.Duration(0), s.TimeRemaining(t0))
	assert.Equal(t, t0.Add(DefaultInterval), s.NextRecommended())
}

func TestCooldownBoundary(t *testing.T) {
	clock := &fakeClock{current: t0}
	s := newTestScheduler(t, newMemSettings(), nil, clock)
	require.NoError(t, s.RecordQuizTaken(t0))

	assert.False(t, s.IsReady(t0))
	assert.False(t, s.IsReady(t0.Add(DefaultCooldown-time.Second)))
	assert.True(t, s.IsReady(t0.Add(DefaultCooldown)))
	assert.True(t, s.IsReady(t0.Add(DefaultCooldown+time.Minute)))

	assert.Equal(t, DefaultCooldown, s.TimeRemaining(t0))
	assert.Equal(t, 30*time.Minute, s.TimeRemaining(t0.Add(90*time.Minute)))
	assert.Equal(t, time.Duration(0), s.TimeRemaining(t0.Add(3*time.Hour)))
}

func TestRecommendationDuringCooldownTargetsCooldownEnd(t *testing.T) {
	clock := &fakeClock{current: t0}
	s := newTestScheduler(t, newMemSettings(), nil, clock)
	require.NoError(t, s.RecordQuizTaken(t0))

	// In cooldown the recommendation lands exactly when the cooldown
	// ends, not one full interval later.
	assert.Equal(t, t0.Add(DefaultCooldown), s.NextRecommended())
}

func TestCheckNowSignalsWhenDue(t *testing.T) {
	clock := &fakeClock{current: t0}
	notifier := &spyNotifier{}
	s := newTestScheduler(t, newMemSettings(), notifier, clock)

	// Not due yet: no signal.
	clock.Advance(30 * time.Minute)
	s.CheckNow()
	assert.Empty(t, notifier.suggested)

	// Past the recommendation with no cooldown pending: signal once and
	// reschedule a full interval ahead.
	clock.Advance(31 * time.Minute)
	s.CheckNow()
	require.Len(t, notifier.suggested, 1)
	assert.Equal(t, clock.current, notifier.suggested[0])
	assert.Equal(t, clock.current.Add(DefaultInterval), s.NextRecommended())
}

func TestCheckNowSuppressedDuringCooldown(t *testing.T) {
	settings := newMemSettings()
	// Simulate a stale recommendation falling inside the cooldown window.
	require.NoError(t, settings.SetTimestamp(SettingLastQuizTime, t0))
	require.NoError(t, settings.SetTimestamp(SettingNextQuizTime, t0.Add(10*time.Minute)))

	clock := &fakeClock{current: t0.Add(15 * time.Minute)}
	notifier := &spyNotifier{}
	s := newTestScheduler(t, settings, notifier, clock)

	s.CheckNow()

	// The signal is suppressed and the recommendation silently moves to
	// the cooldown end.
	assert.Empty(t, notifier.suggested)
	assert.Equal(t, t0.Add(DefaultCooldown), s.NextRecommended())
}

func TestSchedulingStateSurvivesRestart(t *testing.T) {
	settings := newMemSettings()
	clock := &fakeClock{current: t0}
	s := newTestScheduler(t, settings, nil, clock)
	require.NoError(t, s.RecordQuizTaken(t0))

	restarted := newTestScheduler(t, settings, nil, clock)
	assert.False(t, restarted.IsReady(t0.Add(time.Hour)))
	assert.Equal(t, t0.Add(DefaultCooldown), restarted.NextRecommended())
}

func TestRecordQuizTakenWhileReadyRecommendsFullInterval(t *testing.T) {
	clock := &fakeClock{current: t0}
	s := newTestScheduler(t, newMemSettings(), nil, clock)

	later := t0.Add(5 * time.Hour)
	require.NoError(t, s.RecordQuizTaken(later))

	// Immediately after taking a quiz the scheduler is back in cooldown,
	// so the recommendation targets the cooldown end.
	assert.False(t, s.IsReady(later))
	assert.Equal(t, later.Add(DefaultCooldown), s.NextRecommended())
}
