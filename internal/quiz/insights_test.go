package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/quizbank/pkg/models"
)

func history(percentages ...int) []models.QuizResult {
	results := make([]models.QuizResult, len(percentages))
	for i, p := range percentages {
		results[i] = models.QuizResult{Percentage: p, Score: p, Total: 100}
	}
	return results
}

func TestPredictScore(t *testing.T) {
	assert.Equal(t, 50, PredictScore(nil))

	// 0.3*80 + 0.25*60 + 0.2*100 + 0.15*40 + 0.1*20 = 67
	assert.Equal(t, 67, PredictScore(history(80, 60, 100, 40, 20)))

	// Shorter history only uses the weights it has.
	assert.Equal(t, 27, PredictScore(history(90)))
}

func TestDifficultyTiers(t *testing.T) {
	assert.Equal(t, "Medium", Difficulty(nil))
	assert.Equal(t, "Medium", Difficulty(makeBank(4, 0, 0)), "never-asked bank defaults to Medium")

	assert.Equal(t, "Easy", Difficulty(makeBank(4, 10, 9)))
	assert.Equal(t, "Medium", Difficulty(makeBank(4, 10, 6)))
	assert.Equal(t, "Hard", Difficulty(makeBank(4, 10, 2)))
}

func TestInsightsEmptyHistory(t *testing.T) {
	report := Insights(nil)
	assert.Empty(t, report.WeakAreas)
	assert.Empty(t, report.StrongPoints)
	assert.NotEmpty(t, report.Suggestions)
}

func TestInsightsStrongAndConsistent(t *testing.T) {
	report := Insights(history(90, 85, 88))
	assert.Contains(t, report.StrongPoints, "Excellent overall performance")
	assert.NotContains(t, report.WeakAreas, "Inconsistent performance")
}

func TestInsightsFlagsInconsistency(t *testing.T) {
	report := Insights(history(95, 50, 90))
	assert.Contains(t, report.WeakAreas, "Inconsistent performance")
}

func TestInsightsWeakOverall(t *testing.T) {
	report := Insights(history(40, 45, 50))
	assert.Contains(t, report.WeakAreas, "Overall performance needs improvement")
}

func TestRecommendationsPriorityOrder(t *testing.T) {
	recs := Recommendations(&models.ProgressStats{
		Coverage:    20,
		Accuracy:    30,
		QuizHistory: history(30, 40),
	})

	assert.Len(t, recs, 3)
	assert.Equal(t, "high", recs[0].Priority)
	assert.Equal(t, "high", recs[1].Priority)
	assert.Equal(t, "medium", recs[2].Priority)
}

func TestRecommendationsForStrongProgress(t *testing.T) {
	recs := Recommendations(&models.ProgressStats{
		Coverage:    90,
		Accuracy:    85,
		QuizHistory: history(80, 85, 90, 88, 92, 95),
	})

	assert.Len(t, recs, 1)
	assert.Equal(t, "low", recs[0].Priority)
}

func TestResultMessageTiers(t *testing.T) {
	assert.NotEqual(t, ResultMessage(95), ResultMessage(10))
	assert.NotEmpty(t, ResultMessage(0))
	assert.NotEmpty(t, ResultMessage(100))
}
