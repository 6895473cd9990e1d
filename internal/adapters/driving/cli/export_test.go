package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_WritesReportText(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()
	exportOut = ""
	seedLeads(t)

	out, err := execute(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "⭐ Qualified Lead: Acme Corp")
	assert.Contains(t, out, "🆔 **UEI:** XYZ789GHI012")
}

func TestExportCmd_WritesToFile(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()
	seedLeads(t)

	path := filepath.Join(t.TempDir(), "export.txt")
	defer func() { exportOut = "" }()

	out, err := execute(t, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 leads")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "⭐ Qualified Lead: Beta LLC")
}
