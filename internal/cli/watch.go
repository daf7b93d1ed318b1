package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/quizbank/internal/scheduler"
)

// logNotifier surfaces quiz suggestions on the terminal.
type logNotifier struct{}

func (logNotifier) QuizSuggested(now time.Time) {
	log.Printf("Quiz time! Run 'quizbank quiz' to start. (suggested at %s)", now.Format("15:04"))
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the background check that suggests quizzes when you are due",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			sched, err := scheduler.New(store.Settings, logNotifier{}, scheduler.Config{
				Cooldown: cfg.Cooldown,
				Interval: cfg.QuizInterval,
			})
			if err != nil {
				return err
			}
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			fmt.Printf("Watching. Next quiz recommended at %s. Press Ctrl+C to stop.\n",
				sched.NextRecommended().Format("15:04"))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			sig := <-sigChan
			log.Printf("Received signal: %v, stopping", sig)
			return nil
		},
	}
}
