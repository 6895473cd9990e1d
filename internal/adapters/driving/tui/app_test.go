package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
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

func newTestApp(t *testing.T) (*App, *memory.LeadStore) {
	t.Helper()

	store := memory.NewLeadStore()
	registry := services.NewImporterRegistry()
	registry.Register(report.New())
	registry.Register(samcsv.New())

	svc := services.NewLeadService(
		domain.NewSession("tui"),
		store,
		schedule.New(),
		registry,
		10*time.Millisecond,
	)
	_, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	_, err = svc.ImportReplace(context.Background(), sampleExport)
	require.NoError(t, err)

	app := NewApp(svc)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, store
}

func loadInto(t *testing.T, app *App) {
	t.Helper()
	msg := app.loadLeads()()
	loaded, ok := msg.(leadsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	app.Update(loaded)
}

func TestAppListsLoadedLeads(t *testing.T) {
	app, _ := newTestApp(t)
	loadInto(t, app)

	view := app.View()
	assert.Contains(t, view, "Acme Corp")
	assert.Contains(t, view, "Beta LLC")
	assert.Contains(t, view, "2 leads loaded")
}

func TestAppNavigationClampsToList(t *testing.T) {
	app, _ := newTestApp(t)
	loadInto(t, app)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, app.selected)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, app.selected)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, app.selected)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, app.selected)
}

func TestAppFilterNarrowsList(t *testing.T) {
	app, _ := newTestApp(t)
	loadInto(t, app)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	assert.True(t, app.filtering)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("beta")})

	require.Len(t, app.visible, 1)
	lead, ok := app.selectedLead()
	require.True(t, ok)
	assert.Equal(t, "Beta LLC", lead.Company)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.filtering)
	assert.Len(t, app.visible, 2)
}

func TestAppDetailToggle(t *testing.T) {
	app, _ := newTestApp(t)
	loadInto(t, app)

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, app.showDetail)
	assert.Contains(t, app.View(), "ABC123DEF456")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.showDetail)
}

func TestAppCyclesStatus(t *testing.T) {
	app, _ := newTestApp(t)
	loadInto(t, app)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.NotNil(t, cmd)
	msg := cmd()
	updated, ok := msg.(leadUpdated)
	require.True(t, ok)
	require.NoError(t, updated.err)
	assert.Equal(t, domain.StatusContacted, updated.lead.Status)

	app.Update(msg)
	lead, ok := app.selectedLead()
	require.True(t, ok)
	assert.Equal(t, domain.StatusContacted, lead.Status)
}

func TestAppQuitFlushesPendingWrites(t *testing.T) {
	app, store := newTestApp(t)
	loadInto(t, app)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.NotNil(t, cmd)
	app.Update(cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(flushed)
	require.True(t, ok)
	require.NoError(t, done.err)

	_, quitCmd := app.Update(msg)
	require.NotNil(t, quitCmd)
	assert.True(t, app.quitting)

	leads, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 2)
	statuses := map[domain.LeadStatus]bool{}
	for _, lead := range leads {
		statuses[lead.Status] = true
	}
	assert.True(t, statuses[domain.StatusContacted])
}
