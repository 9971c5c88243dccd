// Package cli implements the notesift command-line interface using cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/lanternsoft/notesift-cli/internal/adapters/driven/config/file"
	"github.com/lanternsoft/notesift-cli/internal/adapters/driven/export/jsonfile"
	"github.com/lanternsoft/notesift-cli/internal/adapters/driven/extract"
	sqlitestore "github.com/lanternsoft/notesift-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lanternsoft/notesift-cli/internal/core/ports/driven"
	"github.com/lanternsoft/notesift-cli/internal/core/ports/driving"
	"github.com/lanternsoft/notesift-cli/internal/core/services"
	"github.com/lanternsoft/notesift-cli/internal/logger"
	"github.com/lanternsoft/notesift-cli/internal/noteblob"
)

// version is set by Execute from the build.
var version = "dev"

// defaultNoteTitle is the note exported when no title is configured.
const defaultNoteTitle = "Thoughts"

// defaultOutputPath is where thoughts land when nothing is configured.
const defaultOutputPath = "thoughts.json"

var (
	flagVerbose   bool
	flagConfigDir string
	flagDBPath    string
	flagTitle     string
	flagOutput    string
)

var rootCmd = &cobra.Command{
	Use:   "notesift",
	Short: "Export plain text from Apple Notes",
	Long: `notesift reads a note from the Apple Notes database, decodes its
compressed binary body into plain text, and exports the paragraphs as
JSON. Decoding is best effort: when the note format shifts between
Notes versions, notesift falls back to heuristic recovery instead of
failing.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"print extraction details to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "",
		"config directory (default ~/.notesift)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "",
		"path to NoteStore.sqlite (default: the macOS Notes location)")
	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", "",
		"title of the note to export")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "",
		"output file for exported thoughts")
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

// exportOptions is the merged flag/config view a command runs with.
type exportOptions struct {
	dbPath    string
	title     string
	output    string
	fieldPath []uint64
}

// openConfig returns the configuration backing the current run.
// Tests replace this to inject an in-memory store.
var openConfig = func() (driven.ConfigStore, error) {
	return configfile.NewConfigStore(flagConfigDir)
}

// loadOptions opens the config store and resolves the run options.
func loadOptions() (exportOptions, error) {
	cfg, err := openConfig()
	if err != nil {
		return exportOptions{}, fmt.Errorf("loading config: %w", err)
	}
	return resolveOptions(cfg)
}

// resolveOptions merges flags over cfg over defaults.
func resolveOptions(cfg driven.ConfigStore) (exportOptions, error) {
	opts := exportOptions{
		title:  defaultNoteTitle,
		output: defaultOutputPath,
	}

	if s := cfg.GetString(configfile.KeyDBPath); s != "" {
		opts.dbPath = s
	}
	if s := cfg.GetString(configfile.KeyNoteTitle); s != "" {
		opts.title = s
	}
	if s := cfg.GetString(configfile.KeyOutputPath); s != "" {
		opts.output = s
	}
	if ints := cfg.GetIntSlice(configfile.KeyFieldPath); len(ints) > 0 {
		opts.fieldPath = make([]uint64, 0, len(ints))
		for _, n := range ints {
			if n <= 0 {
				return opts, fmt.Errorf("config %s: field numbers must be positive",
					configfile.KeyFieldPath)
			}
			opts.fieldPath = append(opts.fieldPath, uint64(n))
		}
	}

	if flagDBPath != "" {
		opts.dbPath = flagDBPath
	}
	if flagTitle != "" {
		opts.title = flagTitle
	}
	if flagOutput != "" {
		opts.output = flagOutput
	}

	return opts, nil
}

// buildOrchestrator wires the production dependency graph for one run.
// The returned cleanup releases the database copy. Tests replace this
// to inject mocks.
var buildOrchestrator = func(opts exportOptions) (driving.ExportOrchestrator, func(), error) {
	store, err := sqlitestore.NewNoteStore(opts.dbPath)
	if err != nil {
		return nil, nil, err
	}

	var exOpts []noteblob.Option
	if len(opts.fieldPath) > 0 {
		exOpts = append(exOpts, noteblob.WithFieldPath(opts.fieldPath))
	}

	orch := services.NewExportOrchestrator(store, extract.New(exOpts...), jsonfile.New())
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("Closing note store: %v", err)
		}
	}
	return orch, cleanup, nil
}
