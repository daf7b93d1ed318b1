package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <question-id> <text...>",
		Short: "Attach or replace a question's explanation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid question id %q", args[0])
			}

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Questions.UpdateExplanation(id, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Printf("Explanation updated for question %d\n", id)
			return nil
		},
	}
}
