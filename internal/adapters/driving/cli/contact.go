package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

var (
	contactPhone string
	contactEmail string
)

var contactCmd = &cobra.Command{
	Use:   "contact <lead-id>",
	Short: "Update a lead's contact details",
	Args:  cobra.ExactArgs(1),
	RunE:  runContact,
}

func init() {
	contactCmd.Flags().StringVar(&contactPhone, "phone", "", "phone number")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "email address")
	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	if err := requireService(); err != nil {
		return err
	}

	var patch domain.LeadPatch
	if cmd.Flags().Changed("phone") {
		patch.Phone = &contactPhone
	}
	if cmd.Flags().Changed("email") {
		patch.Email = &contactEmail
	}
	if patch.Phone == nil && patch.Email == nil {
		cmd.Println("Nothing to update: pass --phone and/or --email.")
		return nil
	}

	ctx := context.Background()
	if _, err := leadService.LoadAll(ctx); err != nil {
		return err
	}

	lead, err := leadService.ApplyEdit(args[0], patch)
	if err != nil {
		return err
	}
	cmd.Printf("Updated contact details for %s\n", lead.Company)

	return leadService.Flush(ctx)
}
