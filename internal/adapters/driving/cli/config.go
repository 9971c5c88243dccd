package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	configfile "github.com/lanternsoft/notesift-cli/internal/adapters/driven/config/file"
	"github.com/lanternsoft/notesift-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage notesift configuration",
	Long: `View and change the settings stored in the config file.

Known keys:
  notes.db_path       path to NoteStore.sqlite
  note.title          title of the note to export
  export.output_path  output file for exported thoughts
  extract.field_path  schema field path, comma-separated (e.g. 2,3,2)`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys are the keys the show subcommand lists, in display order.
var configKeys = []string{
	configfile.KeyDBPath,
	configfile.KeyNoteTitle,
	configfile.KeyOutputPath,
	configfile.KeyFieldPath,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cmd.Printf("Config file: %s\n\n", cfg.Path())
	for _, key := range configKeys {
		val, ok := cfg.Get(key)
		if !ok {
			cmd.Printf("%s = (not set)\n", key)
			continue
		}
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := openConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, ok := cfg.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q: %w", args[0], domain.ErrNotFound)
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := openConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	key, raw := args[0], args[1]
	value, err := parseConfigValue(key, raw)
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cmd.Println(cfg.Path())
	return nil
}

// parseConfigValue converts the raw argument into the type the key
// expects. The field path is a comma-separated list of positive field
// numbers; everything else is stored as a string.
func parseConfigValue(key, raw string) (any, error) {
	if key != configfile.KeyFieldPath {
		return raw, nil
	}

	parts := strings.Split(raw, ",")
	path := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s: %q is not a positive field number: %w",
				key, p, domain.ErrInvalidInput)
		}
		path = append(path, n)
	}
	return path, nil
}
