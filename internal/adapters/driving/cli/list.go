package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

var (
	listStatus string
	listSource string
	listSearch string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads in the collection",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (new|contacted|qualified|unqualified)")
	listCmd.Flags().StringVar(&listSource, "source", "", "filter by source (original|fresh)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by company, POC or UEI substring")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := requireService(); err != nil {
		return err
	}

	leads, err := leadService.LoadAll(context.Background())
	if err != nil {
		return err
	}

	filtered := filterLeads(leads, listStatus, listSource, listSearch)

	if listJSON {
		data, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal leads: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(filtered) == 0 {
		cmd.Println("No leads found.")
		return nil
	}

	for _, lead := range filtered {
		last := "never"
		if lead.LastContactDate != nil {
			last = lead.LastContactDate.Format("2006-01-02")
		}
		cmd.Printf("%s  [%s/%s]  %s\n", lead.ID, lead.Status, lead.Source, lead.Company)
		cmd.Printf("    POC: %s  Calls: %d  Last contact: %s\n", orDash(lead.POCName), len(lead.CallHistory), last)
	}
	cmd.Printf("\n%d of %d leads\n", len(filtered), len(leads))
	return nil
}

func filterLeads(leads []domain.Lead, status, source, search string) []domain.Lead {
	search = strings.ToLower(search)
	var out []domain.Lead
	for _, lead := range leads {
		if status != "" && string(lead.Status) != status {
			continue
		}
		if source != "" && string(lead.Source) != source {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(lead.Company + " " + lead.POCName + " " + lead.UEI)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, lead)
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
