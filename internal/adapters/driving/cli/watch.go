package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	sqlitestore "github.com/lanternsoft/notesift-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lanternsoft/notesift-cli/internal/logger"
)

// debounceWindow is the minimum gap between exports while watching.
// Notes checkpoints its WAL in bursts.
const debounceWindow = 2 * time.Second

// defaultDBPath is stubbed in tests.
var defaultDBPath = sqlitestore.DefaultDBPath

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-export whenever the Notes database changes",
	Long: `Watches the NoteStore.sqlite directory and runs an export after each
change to the database or its -wal journal. Changes are debounced so a
burst of writes triggers a single export. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	dbPath := opts.dbPath
	if dbPath == "" {
		dbPath, err = defaultDBPath()
		if err != nil {
			return err
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: sqlite swaps the -wal file rather than
	// modifying the database file in place.
	if err := watcher.Add(filepath.Dir(dbPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(dbPath), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// At most one export per debounce window, however many writes land.
	limiter := rate.NewLimiter(rate.Every(debounceWindow), 1)

	// Initial export so the output exists before the first change.
	if err := exportOnce(ctx, cmd, opts); err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", dbPath)

	base := filepath.Base(dbPath)
	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped watching.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				logger.Debug("Debounced change to %s", event.Name)
				continue
			}
			logger.Info("Change detected: %s", event.Name)
			if err := exportOnce(ctx, cmd, opts); err != nil {
				// Keep watching; a transient lock is not fatal.
				cmd.PrintErrf("export failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		}
	}
}

// exportOnce runs a single export with a fresh database snapshot.
func exportOnce(ctx context.Context, cmd *cobra.Command, opts exportOptions) error {
	orch, cleanup, err := buildOrchestrator(opts)
	if err != nil {
		return fmt.Errorf("opening note store: %w", err)
	}
	defer cleanup()

	result, err := orch.Export(ctx, opts.title, opts.output)
	if err != nil {
		return err
	}
	cmd.Printf("Synced %d thoughts to %s\n", len(result.Thoughts), result.OutputPath)
	return nil
}
