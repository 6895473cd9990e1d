package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threec-labs/leads-cli/internal/adapters/driven/schedule"
	"github.com/threec-labs/leads-cli/internal/adapters/driven/storage/memory"
	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/services"
	"github.com/threec-labs/leads-cli/internal/importers/report"
	"github.com/threec-labs/leads-cli/internal/importers/samcsv"
)

const sampleReport = `========================================================
⭐ Qualified Lead: Acme Corp
========================================================
🆔 **UEI:** ABC123DEF456
👤 **POC Name:** Jane Smith
`

func newTestService(t *testing.T) *services.LeadService {
	t.Helper()

	registry := services.NewImporterRegistry()
	registry.Register(report.New())
	registry.Register(samcsv.New())

	svc := services.NewLeadService(
		domain.NewSession("watcher"),
		memory.NewLeadStore(),
		schedule.New(),
		registry,
		10*time.Millisecond,
	)
	_, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	return svc
}

func TestWatcherImportsDroppedFile(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(dir, svc)
	require.NoError(t, w.Start(ctx))

	path := filepath.Join(dir, "qualified_leads_report.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0o644))

	assert.Eventually(t, func() bool {
		leads := svc.Leads()
		return len(leads) == 1 && leads[0].Company == "Acme Corp"
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(dir, svc)
	require.NoError(t, w.Start(ctx))

	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("not a lead export"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, svc.Leads())
}

func TestBackfillImportsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(t)

	path := filepath.Join(dir, "qualified_leads_report.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0o644))

	w := New(dir, svc)
	require.NoError(t, w.Backfill(context.Background()))

	leads := svc.Leads()
	require.Len(t, leads, 1)
	assert.Equal(t, "Acme Corp", leads[0].Company)
}

func TestIsImportable(t *testing.T) {
	assert.True(t, isImportable("leads.txt"))
	assert.True(t, isImportable("Fresh_Leads.CSV"))
	assert.False(t, isImportable("leads.json"))
	assert.False(t, isImportable("leads"))
}
