package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

var (
	callOutcome  string
	callNotes    string
	callDuration string
	callDate     string
)

var callCmd = &cobra.Command{
	Use:   "call <lead-id>",
	Short: "Record a call against a lead",
	Long: `Records a contact attempt in the lead's call history. A lead in the
"new" status advances to "contacted" on its first recorded call.`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&callOutcome, "outcome", "answered", "call outcome (answered|voicemail|no-answer|busy)")
	callCmd.Flags().StringVar(&callNotes, "notes", "", "notes about the call")
	callCmd.Flags().StringVar(&callDuration, "duration", "", "call duration, free form")
	callCmd.Flags().StringVar(&callDate, "date", "", "call date as YYYY-MM-DD, defaults to now")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	if err := requireService(); err != nil {
		return err
	}

	in := domain.CallInput{
		Outcome:  domain.CallOutcome(callOutcome),
		Notes:    callNotes,
		Duration: callDuration,
	}
	if callDate != "" {
		date, err := time.Parse("2006-01-02", callDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", callDate, err)
		}
		in.Date = date
	}

	ctx := context.Background()
	if _, err := leadService.LoadAll(ctx); err != nil {
		return err
	}

	lead, err := leadService.AddCall(args[0], in)
	if err != nil {
		return err
	}
	cmd.Printf("Recorded %s call for %s (%d calls total, status %s)\n",
		callOutcome, lead.Company, len(lead.CallHistory), lead.Status)

	return leadService.Flush(ctx)
}
