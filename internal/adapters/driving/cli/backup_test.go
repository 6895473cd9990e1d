package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupCmd_WritesSnapshot(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	seedLeads(t)

	out, err := execute(t, "backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Backup written to backups/leads-backup-")
	assert.Equal(t, 1, store.BackupCount())
}

func TestHealthCmd_ReportsHealthyStore(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()

	out, err := execute(t, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Store is healthy.")
}
