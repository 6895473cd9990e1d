package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <lead-id>",
	Short: "Show one lead in full, including call history",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := requireService(); err != nil {
		return err
	}

	if _, err := leadService.LoadAll(context.Background()); err != nil {
		return err
	}
	lead, err := leadService.Get(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(lead, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal lead: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s  [%s/%s]\n", lead.Company, lead.Status, lead.Source)
	cmd.Printf("  ID:       %s\n", lead.ID)
	cmd.Printf("  UEI:      %s\n", orDash(lead.UEI))
	cmd.Printf("  POC:      %s\n", orDash(lead.POCName))
	cmd.Printf("  Phone:    %s\n", orDash(lead.Phone))
	cmd.Printf("  Email:    %s\n", orDash(lead.Email))
	cmd.Printf("  Address:  %s\n", orDash(lead.Address))
	cmd.Printf("  Initial entity date:    %s\n", orDash(lead.InitialEntityDate))
	cmd.Printf("  Recent activation date: %s\n", orDash(lead.RecentActivationDate))
	if lead.NAICSCodes != "" {
		cmd.Printf("  NAICS (%s): %s\n", lead.NAICSCount, lead.NAICSCodes)
	}
	if lead.Source == "fresh" {
		cmd.Printf("  CAGE: %s  Registration: %s  Expires: %s\n",
			orDash(lead.CageCode), orDash(lead.RegistrationStatus), orDash(lead.ExpirationDate))
	}
	if lead.Notes != "" {
		cmd.Printf("  Notes: %s\n", lead.Notes)
	}

	if len(lead.CallHistory) == 0 {
		cmd.Println("  No calls recorded.")
		return nil
	}
	cmd.Printf("  Calls (%d):\n", len(lead.CallHistory))
	for _, call := range lead.CallHistory {
		line := fmt.Sprintf("    %s  %s", call.Date.Format("2006-01-02 15:04"), call.Outcome)
		if call.Duration != "" {
			line += "  (" + call.Duration + ")"
		}
		if call.Notes != "" {
			line += "  " + call.Notes
		}
		cmd.Println(line)
	}
	return nil
}
