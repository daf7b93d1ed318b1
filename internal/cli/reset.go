package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all questions, performance history and results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				fmt.Println("This deletes every stored record. Re-run with --yes to confirm.")
				return nil
			}

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Println("Database cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the reset")
	return cmd
}
