package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/adapters/driving/watch"
)

var (
	watchBackfill bool

	// defaultWatchDir comes from the config file; used when no dir
	// argument is given.
	defaultWatchDir string
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and import dropped export files",
	Long: `Watches a directory and imports any .txt or .csv lead export placed
in it, applying the same replace/append rules as the import command.
Runs until interrupted. Without an argument the configured watch_dir
is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchBackfill, "backfill", false, "import export files already present in the directory")
	rootCmd.AddCommand(watchCmd)
}

// SetDefaultWatchDir sets the drop directory used when watch is invoked
// without an argument.
func SetDefaultWatchDir(dir string) {
	defaultWatchDir = dir
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := requireService(); err != nil {
		return err
	}

	dir := defaultWatchDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return errors.New("no directory given and no watch_dir configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := leadService.LoadAll(ctx); err != nil {
		return err
	}

	watcher := watch.New(dir, leadService)
	if watchBackfill {
		if err := watcher.Backfill(ctx); err != nil {
			return err
		}
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	cmd.Printf("Watching %s for lead exports. Press Ctrl+C to stop.\n", dir)
	<-ctx.Done()

	return leadService.Flush(context.Background())
}
