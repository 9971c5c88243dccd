package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanternsoft/notesift-cli/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the note's thoughts to JSON",
	Long: `Reads the configured note, extracts its plain text and writes each
paragraph as a thought to the output file. An empty or unreadable note
produces an empty thoughts list, not an error.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	orch, cleanup, err := buildOrchestrator(opts)
	if err != nil {
		return fmt.Errorf("opening note store: %w", err)
	}
	defer cleanup()

	result, err := orch.Export(cmd.Context(), opts.title, opts.output)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logger.Debug("Extraction tier: %s", result.Tier)
	if len(result.Thoughts) == 0 {
		cmd.Printf("Note %q produced no thoughts; wrote empty list to %s\n",
			opts.title, result.OutputPath)
		return nil
	}

	cmd.Printf("Synced %d thoughts to %s\n", len(result.Thoughts), result.OutputPath)
	return nil
}
