package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/quizbank/internal/importer"
)

func newImportCmd() *cobra.Command {
	var category, sheet string
	var keepHeader bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import questions from a CSV or Excel file",
		Long: "Each row holds: question, option A, option B, option C, option D,\n" +
			"correct letter and an optional explanation. Bad rows are counted and\n" +
			"skipped, they never abort the import.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			config := importer.DefaultConfig(args[0])
			config.Category = category
			config.SheetName = sheet
			config.SkipHeader = !keepHeader

			result, err := importer.ImportFile(store, config)
			if err != nil {
				return err
			}

			fmt.Printf("Processed %d rows: %d added, %d rejected\n",
				result.Processed, result.Added, result.Errors)
			for _, rowErr := range result.RowErrors {
				fmt.Println("  " + rowErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "general", "category label for imported questions")
	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "sheet name (Excel files)")
	cmd.Flags().BoolVar(&keepHeader, "keep-header", false, "treat the first row as data instead of a header")
	return cmd
}
