// Package cli provides the cobra command surface of the leads CLI. Every
// command talks to the core through the driving LeadService port; commands
// that mutate the collection flush before the process exits so a short
// lived CLI session never drops a debounced write.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/core/ports/driving"
	"github.com/threec-labs/leads-cli/internal/logger"
)

var (
	// leadService is injected by main before Execute.
	leadService driving.LeadService

	// version is set at build time via SetVersion.
	version = "dev"

	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "leads",
	Short: "Track sales leads against a shared remote collection",
	Long: `leads imports sales-lead exports, stores them as one JSON document in a
remote object bucket and lets you browse, annotate and status-track them.

Report-text exports (.txt) replace the collection on import; CSV exports
(.csv) append fresh leads to it.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetLeadService injects the core service used by all commands.
func SetLeadService(svc driving.LeadService) {
	leadService = svc
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireService guards commands against a missing injection.
func requireService() error {
	if leadService == nil {
		return errors.New("lead service not configured")
	}
	return nil
}
