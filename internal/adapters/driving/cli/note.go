package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <lead-id> <text>",
	Short: "Replace a lead's notes",
	Args:  cobra.ExactArgs(2),
	RunE:  runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(cmd *cobra.Command, args []string) error {
	if err := requireService(); err != nil {
		return err
	}

	ctx := context.Background()
	if _, err := leadService.LoadAll(ctx); err != nil {
		return err
	}

	lead, err := leadService.SetNotes(args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Printf("Updated notes for %s\n", lead.Company)

	return leadService.Flush(ctx)
}
