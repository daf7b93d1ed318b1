// Package cli wires the terminal commands around the practice engine.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/quizbank/internal/config"
	"github.com/example/quizbank/internal/database"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizbank",
		Short: "Adaptive multiple-choice practice quizzes",
		Long: "quizbank stores a bank of multiple-choice questions, assembles practice\n" +
			"quizzes biased toward your weak spots and throttles how often a new quiz\n" +
			"may start.",
		SilenceUsage: true,
	}
	cmd.AddCommand(newQuizCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newExplainCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newWatchCmd())
	return cmd
}

// openStore loads configuration and connects the store.
func openStore() (*database.Store, config.Config, error) {
	cfg := config.Load()
	store, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}
