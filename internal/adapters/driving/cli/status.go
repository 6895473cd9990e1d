package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status <lead-id> <new|contacted|qualified|unqualified>",
	Short: "Set a lead's tracking status",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := requireService(); err != nil {
		return err
	}

	ctx := context.Background()
	if _, err := leadService.LoadAll(ctx); err != nil {
		return err
	}

	lead, err := leadService.SetStatus(args[0], domain.LeadStatus(args[1]))
	if err != nil {
		return err
	}
	cmd.Printf("%s is now %s\n", lead.Company, lead.Status)

	return leadService.Flush(ctx)
}
