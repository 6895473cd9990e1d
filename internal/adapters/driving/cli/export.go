package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/importers/report"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as report text",
	Long: `Writes the collection back out in the report-text block format, the
same format the import command accepts for .txt files.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := requireService(); err != nil {
		return err
	}

	leads, err := leadService.LoadAll(context.Background())
	if err != nil {
		return err
	}

	text := report.Serialize(leads)
	if exportOut == "" {
		cmd.Println(text)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	cmd.Printf("Exported %d leads to %s\n", len(leads), exportOut)
	return nil
}
