package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanternsoft/notesift-cli/internal/logger"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the note's extracted text",
	Long: `Extracts the configured note and prints its paragraphs to stdout
without writing any file. Useful for checking what an export would
contain.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	orch, cleanup, err := buildOrchestrator(opts)
	if err != nil {
		return fmt.Errorf("opening note store: %w", err)
	}
	defer cleanup()

	result, err := orch.Preview(cmd.Context(), opts.title)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	for i, thought := range result.Thoughts {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(thought.Text)
	}
	if logger.IsVerbose() {
		cmd.PrintErrf("tier: %s, thoughts: %d\n", result.Tier, len(result.Thoughts))
	}
	return nil
}
