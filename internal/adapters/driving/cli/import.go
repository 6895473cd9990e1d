package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a lead export file",
	Long: `Imports a lead export into the remote collection.

Report-text exports (.txt) replace the entire collection; CSV exports
(.csv) append fresh leads to whatever is already there.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := requireService(); err != nil {
		return err
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx := context.Background()
	if _, err := leadService.LoadAll(ctx); err != nil {
		return err
	}

	collection, err := leadService.Import(ctx, path, string(data))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %s. Collection now holds %d leads.\n", path, len(collection))
	return nil
}
