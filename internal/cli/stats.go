package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/quizbank/internal/quiz"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress, insights and study recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.ProgressStats()
			if err != nil {
				return err
			}
			bank, err := store.QuestionsWithPerformance()
			if err != nil {
				return err
			}

			fmt.Printf("Questions: %d   Coverage: %d%%   Accuracy: %d%%   Difficulty: %s\n",
				stats.TotalQuestions, stats.Coverage, stats.Accuracy, quiz.Difficulty(bank))
			fmt.Printf("Asked %d times total, %d answered correctly.\n", stats.TotalAsked, stats.TotalCorrect)

			if len(stats.QuizHistory) > 0 {
				fmt.Printf("Predicted next score: %d%%\n", quiz.PredictScore(stats.QuizHistory))
				fmt.Println("\nRecent quizzes:")
				for _, r := range stats.QuizHistory {
					fmt.Printf("  %s  %d/%d (%d%%) in %s\n",
						r.CompletedAt.Format("2006-01-02 15:04"),
						r.Score, r.Total, r.Percentage,
						formatDuration(time.Duration(r.DurationSec)*time.Second))
				}
			}

			report := quiz.Insights(stats.QuizHistory)
			printList("Strong points", report.StrongPoints)
			printList("Weak areas", report.WeakAreas)
			printList("Suggestions", report.Suggestions)

			if recs := quiz.Recommendations(stats); len(recs) > 0 {
				fmt.Println("\nRecommendations:")
				for _, rec := range recs {
					fmt.Printf("  [%s] %s: %s\n", rec.Priority, rec.Message, rec.Action)
				}
			}
			return nil
		},
	}
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println("\n" + title + ":")
	for _, item := range items {
		fmt.Println("  - " + item)
	}
}
