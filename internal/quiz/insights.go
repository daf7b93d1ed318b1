package quiz

import (
	"fmt"
	"math"

	"github.com/example/quizbank/pkg/models"
)

// InsightReport summarizes observed strengths and weaknesses from quiz
// history.
type InsightReport struct {
	WeakAreas    []string `json:"weak_areas"`
	StrongPoints []string `json:"strong_points"`
	Suggestions  []string `json:"suggestions"`
}

// Recommendation is one prioritized study suggestion.
type Recommendation struct {
	Priority string `json:"priority"` // high, medium or low
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// Difficulty labels the bank from the average accuracy of asked questions.
func Difficulty(bank []models.QuestionPerformance) string {
	totalAccuracy := 0.0
	count := 0
	for i := range bank {
		if bank[i].TimesAsked > 0 {
			totalAccuracy += float64(bank[i].TimesCorrect) / float64(bank[i].TimesAsked) * 100
			count++
		}
	}
	if count == 0 {
		return "Medium"
	}

	avg := totalAccuracy / float64(count)
	switch {
	case avg >= 80:
		return "Easy"
	case avg >= 50:
		return "Medium"
	}
	return "Hard"
}

// Insights derives performance observations from quiz history, newest
// first.
func Insights(history []models.QuizResult) InsightReport {
	var report InsightReport

	if len(history) == 0 {
		report.Suggestions = append(report.Suggestions, "Take your first quiz to get insights")
		return report
	}

	sum := 0
	for _, r := range history {
		sum += r.Percentage
	}
	avg := float64(sum) / float64(len(history))

	switch {
	case avg >= 80:
		report.StrongPoints = append(report.StrongPoints, "Excellent overall performance")
		report.Suggestions = append(report.Suggestions, "Maintain consistency with regular practice")
	case avg >= 60:
		report.StrongPoints = append(report.StrongPoints, "Good progress")
		report.Suggestions = append(report.Suggestions, "Focus on improving weak areas")
	default:
		report.WeakAreas = append(report.WeakAreas, "Overall performance needs improvement")
		report.Suggestions = append(report.Suggestions, "Review explanations and practice more")
	}

	// Swings above 30 points across the last three quizzes flag
	// inconsistency.
	if len(history) >= 2 {
		recent := history
		if len(recent) > 3 {
			recent = recent[:3]
		}
		lo, hi := recent[0].Percentage, recent[0].Percentage
		for _, r := range recent[1:] {
			if r.Percentage < lo {
				lo = r.Percentage
			}
			if r.Percentage > hi {
				hi = r.Percentage
			}
		}
		if hi-lo > 30 {
			report.WeakAreas = append(report.WeakAreas, "Inconsistent performance")
			report.Suggestions = append(report.Suggestions, "Practice regularly for consistent results")
		}
	}

	return report
}

// predictionWeights favor the most recent results.
var predictionWeights = []float64{0.3, 0.25, 0.2, 0.15, 0.1}

// PredictScore estimates the next quiz percentage as a weighted average of
// up to the five most recent results (history ordered newest first). With
// no history it returns 50.
func PredictScore(history []models.QuizResult) int {
	if len(history) == 0 {
		return 50
	}
	predicted := 0.0
	for i := 0; i < len(history) && i < len(predictionWeights); i++ {
		predicted += float64(history[i].Percentage) * predictionWeights[i]
	}
	return int(math.Round(predicted))
}

// Recommendations turns progress stats into prioritized study suggestions,
// ordered high priority first.
func Recommendations(stats *models.ProgressStats) []Recommendation {
	var recs []Recommendation

	if stats.Coverage < 50 {
		recs = append(recs, Recommendation{
			Priority: "high",
			Message:  fmt.Sprintf("Increase question bank coverage (currently %d%%)", stats.Coverage),
			Action:   "Take more quizzes to see all questions",
		})
	}
	if stats.Accuracy < 60 {
		recs = append(recs, Recommendation{
			Priority: "high",
			Message:  fmt.Sprintf("Improve accuracy (currently %d%%)", stats.Accuracy),
			Action:   "Review explanations for incorrect answers",
		})
	}
	if len(stats.QuizHistory) < 5 {
		recs = append(recs, Recommendation{
			Priority: "medium",
			Message:  "Practice more regularly",
			Action:   "Take at least one quiz daily",
		})
	}
	if stats.Coverage >= 80 && stats.Accuracy >= 80 {
		recs = append(recs, Recommendation{
			Priority: "low",
			Message:  "Excellent progress",
			Action:   "Maintain with regular practice",
		})
	}

	// Already appended in priority order: high entries first, then
	// medium, then low.
	return recs
}

// ResultMessage maps a quiz percentage to a one-line summary.
func ResultMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Outstanding! You know this material well."
	case percentage >= 75:
		return "Great job! Keep up the solid work."
	case percentage >= 60:
		return "Good effort. A bit more practice will pay off."
	case percentage >= 40:
		return "Needs improvement. Review the explanations."
	}
	return "Keep practicing. Focus on the questions you missed."
}
