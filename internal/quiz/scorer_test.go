package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreNeverAskedOutranksEverything(t *testing.T) {
	w := DefaultScoreWeights()

	assert.Equal(t, 100.0, w.Score(0, 0))
	assert.Equal(t, 90.0, w.Score(1, 0))
	assert.Greater(t, w.Score(0, 0), w.Score(1, 0))
}

func TestScorePolicy(t *testing.T) {
	w := DefaultScoreWeights()

	tests := []struct {
		name         string
		timesAsked   int
		timesCorrect int
		want         float64
	}{
		{"never asked", 0, 0, 100},
		{"asked once never correct", 1, 0, 90},
		{"always wrong gets boost", 3, 0, 74},     // 60 - 6, then +20
		{"half accuracy", 10, 5, 10},              // 30 - 20 capped penalty, floor
		{"perfect hits floor", 4, 4, 10},          // 0 - 8, clamped to 10
		{"frequency penalty capped", 50, 25, 10},  // 30 - 20, floor
		{"moderate history", 4, 1, 37},            // 45 - 8
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, w.Score(tt.timesAsked, tt.timesCorrect), 1e-9)
		})
	}
}

func TestScoreLowerAccuracyNeverScoresLower(t *testing.T) {
	w := DefaultScoreWeights()

	// Holding timesAsked fixed, zero accuracy must outrank perfect accuracy.
	for _, asked := range []int{2, 5, 10, 40} {
		assert.Greater(t, w.Score(asked, 0), w.Score(asked, asked),
			"timesAsked=%d", asked)
	}
}

func TestScoreWeightsAreOverridable(t *testing.T) {
	w := DefaultScoreWeights()
	w.NeverAsked = 500
	w.MinScore = 1

	assert.Equal(t, 500.0, w.Score(0, 0))
	assert.Equal(t, 1.0, w.Score(4, 4))
}
