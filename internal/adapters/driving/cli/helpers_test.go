package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/threec-labs/leads-cli/internal/adapters/driven/schedule"
	"github.com/threec-labs/leads-cli/internal/adapters/driven/storage/memory"
	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/services"
	"github.com/threec-labs/leads-cli/internal/importers/report"
	"github.com/threec-labs/leads-cli/internal/importers/samcsv"
)

const sampleExport = `========================================================
⭐ Qualified Lead: Acme Corp
========================================================
🆔 **UEI:** ABC123DEF456
👤 **POC Name:** Jane Smith

========================================================
⭐ Qualified Lead: Beta LLC
========================================================
🆔 **UEI:** XYZ789GHI012
👤 **POC Name:** Bob Jones
`

// setupTestService wires a memory-store backed service into the command
// tree and returns the store plus a cleanup restoring the previous state.
func setupTestService(t *testing.T) (*memory.LeadStore, func()) {
	t.Helper()

	store := memory.NewLeadStore()
	registry := services.NewImporterRegistry()
	registry.Register(report.New())
	registry.Register(samcsv.New())

	svc := services.NewLeadService(
		domain.NewSession("test"),
		store,
		schedule.New(),
		registry,
		10*time.Millisecond,
	)

	previous := leadService
	SetLeadService(svc)
	return store, func() { leadService = previous }
}

// seedLeads imports the sample export so commands have data to act on.
func seedLeads(t *testing.T) []domain.Lead {
	t.Helper()
	_, err := leadService.LoadAll(context.Background())
	require.NoError(t, err)
	leads, err := leadService.ImportReplace(context.Background(), sampleExport)
	require.NoError(t, err)
	return leads
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
