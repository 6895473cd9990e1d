package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

func TestStatusCmd_PersistsNewStatus(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)

	out, err := execute(t, "status", leads[0].ID, "qualified")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Corp is now qualified")

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQualified, stored[0].Status)
}

func TestStatusCmd_RejectsUnknownStatus(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)

	_, err := execute(t, "status", leads[0].ID, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestNoteCmd_PersistsNotes(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)

	out, err := execute(t, "note", leads[1].ID, "call back next week")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated notes for Beta LLC")

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "call back next week", stored[1].Notes)
}

func TestContactCmd_UpdatesPhoneAndEmail(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)

	out, err := execute(t, "contact", leads[0].ID,
		"--phone", "555-0100", "--email", "jane@acme.example")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated contact details for Acme Corp")

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "555-0100", stored[0].Phone)
	assert.Equal(t, "jane@acme.example", stored[0].Email)
}

func TestContactCmd_NoFlagsIsNoop(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)

	// Flag state persists across Execute calls in one process.
	contactPhone, contactEmail = "", ""
	contactCmd.Flags().Lookup("phone").Changed = false
	contactCmd.Flags().Lookup("email").Changed = false

	out, err := execute(t, "contact", leads[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to update")

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored[0].Phone)
}

func TestCallCmd_RecordsCallAndAdvancesStatus(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)

	out, err := execute(t, "call", leads[0].ID,
		"--outcome", "voicemail", "--notes", "left message", "--duration", "2m")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded voicemail call for Acme Corp")
	assert.Contains(t, out, "status contacted")

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored[0].CallHistory, 1)
	assert.Equal(t, domain.OutcomeVoicemail, stored[0].CallHistory[0].Outcome)
	assert.Equal(t, "left message", stored[0].CallHistory[0].Notes)
	assert.Equal(t, domain.StatusContacted, stored[0].Status)
	require.NotNil(t, stored[0].LastContactDate)
}

func TestCallCmd_ExplicitDate(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)
	defer func() { callDate = "" }()

	_, err := execute(t, "call", leads[0].ID, "--outcome", "answered", "--date", "2024-06-15")
	require.NoError(t, err)

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored[0].CallHistory, 1)
	assert.Equal(t, "2024-06-15", stored[0].CallHistory[0].Date.Format("2006-01-02"))
}

func TestCallCmd_InvalidDate(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)
	defer func() { callDate = "" }()

	_, err := execute(t, "call", leads[0].ID, "--date", "June 15th")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --date")
}

func TestCallCmd_RejectsUnknownOutcome(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()
	leads := seedLeads(t)

	_, err := execute(t, "call", leads[0].ID, "--outcome", "ghosted")
	assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
}
