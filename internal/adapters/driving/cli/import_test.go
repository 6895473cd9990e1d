package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `UEI,CAGE,Status,Initial Registration,Expiration,Last Update,Legal Business Name,City,State,Zip,POC First Name,POC Last Name
FRESHUEI0001,1ABC2,Active,20230615,20250101,20240101,Gamma Industries,Austin,TX,78701,Carol,White
`

func TestImportCmd_RequiresFileArg(t *testing.T) {
	_, err := execute(t, "import")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()

	_, err := execute(t, "import", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestImportCmd_ReportReplacesCollection(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "qualified_leads_report.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))

	out, err := execute(t, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 leads")

	leads, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, leads, 2)
}

func TestImportCmd_CSVAppendsToCollection(t *testing.T) {
	store, cleanup := setupTestService(t)
	defer cleanup()
	seedLeads(t)

	path := filepath.Join(t.TempDir(), "fresh_leads.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	out, err := execute(t, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 leads")

	leads, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, "Gamma Industries", leads[2].Company)
}

func TestImportCmd_UnsupportedExtension(t *testing.T) {
	_, cleanup := setupTestService(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "leads.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := execute(t, "import", path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}
