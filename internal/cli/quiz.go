package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/quizbank/internal/quiz"
	"github.com/example/quizbank/internal/scheduler"
	"github.com/example/quizbank/pkg/models"
)

func newQuizCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Start an adaptive practice quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(category)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category tag recorded on the quiz result")
	return cmd
}

func runQuiz(category string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sched, err := scheduler.New(store.Settings, nil, scheduler.Config{
		Cooldown: cfg.Cooldown,
		Interval: cfg.QuizInterval,
	})
	if err != nil {
		return err
	}

	expired := make(chan struct{})
	session, err := quiz.StartSession(store, sched, quiz.SessionConfig{
		QuestionCount: cfg.QuestionsPerQuiz,
		Countdown:     cfg.QuizCountdown,
		Category:      category,
		OnExpire: func(summary *quiz.Summary, err error) {
			fmt.Println("\nTime is up! Submitting your answers.")
			close(expired)
		},
	}, time.Now())
	if err != nil {
		var notReady *quiz.NotReadyError
		if errors.As(err, &notReady) {
			fmt.Printf("Please wait %s before taking another quiz.\n", formatDuration(notReady.Remaining))
			return nil
		}
		if errors.Is(err, quiz.ErrEmptyBank) {
			fmt.Println("No questions found. Import questions first with 'quizbank import'.")
			return nil
		}
		return err
	}

	questions := session.Questions()
	fmt.Printf("Quiz started: %d questions, %s on the clock. Enter A-D, or press Enter to skip.\n\n",
		len(questions), formatDuration(cfg.QuizCountdown))

	reader := bufio.NewReader(os.Stdin)
	for i, q := range questions {
		if !session.Active() {
			break
		}
		session.GoTo(i)
		printQuestion(i+1, len(questions), q, session.Remaining(time.Now()))

		answer, readErr := reader.ReadString('\n')
		if readErr != nil {
			break
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		if err := session.Answer(q.ID, answer); err != nil {
			if errors.Is(err, quiz.ErrSessionClosed) {
				break
			}
			fmt.Printf("  (%v, skipped)\n", err)
		}
	}

	summary, err := session.Submit(time.Now())
	if errors.Is(err, quiz.ErrSessionClosed) {
		// The countdown already forced the submit.
		<-expired
		return nil
	}

	var partial *quiz.PartialUpdateError
	if errors.As(err, &partial) {
		fmt.Printf("Warning: %v\n", partial)
	} else if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printQuestion(number, total int, q models.Question, remaining time.Duration) {
	fmt.Printf("[%d/%d] (%s left) %s\n", number, total, formatDuration(remaining), q.Text)
	for _, letter := range models.OptionLetters {
		fmt.Printf("  %s) %s\n", letter, q.Option(letter))
	}
	fmt.Print("> ")
}

func printSummary(summary *quiz.Summary) {
	r := summary.Result
	fmt.Printf("\nQuiz completed: %d/%d correct (%d%%) in %s\n",
		r.Score, r.Total, r.Percentage, formatDuration(time.Duration(r.DurationSec)*time.Second))
	fmt.Println(quiz.ResultMessage(r.Percentage))

	for _, review := range summary.Reviews {
		if review.Correct {
			continue
		}
		answered := review.UserAnswer
		if answered == "" {
			answered = "no answer"
		}
		fmt.Printf("\n✗ %s\n  Your answer: %s, correct: %s\n", review.Text, answered, review.CorrectAnswer)
		if review.Explanation != "" {
			fmt.Printf("  Explanation: %s\n", review.Explanation)
		}
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
