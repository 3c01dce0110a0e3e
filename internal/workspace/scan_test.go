package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdir(t *testing.T, root string, name string, modified time.Time) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.Chtimes(path, modified, modified))
	return path
}

func TestScanOrdersByRecency(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "alpha", time.Unix(100, 0))
	mkdir(t, root, "beta", time.Unix(200, 0))

	entries := Scan(root)
	require.Len(t, entries, 2)
	assert.Equal(t, "beta", entries[0].Name)
	assert.Equal(t, "alpha", entries[1].Name)
}

func TestScanSkipsPlainFiles(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "proj", time.Now())
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	entries := Scan(root)
	require.Len(t, entries, 1)
	assert.Equal(t, "proj", entries[0].Name)
}

func TestScanMissingRootIsEmpty(t *testing.T) {
	entries := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Empty(t, entries)
}

func TestScanNamesAreUnique(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		mkdir(t, root, name, time.Now())
	}

	seen := map[string]bool{}
	for _, e := range Scan(root) {
		assert.False(t, seen[e.Name], "duplicate entry name %q", e.Name)
		seen[e.Name] = true
	}
}

func TestScanProbesMarkers(t *testing.T) {
	root := t.TempDir()
	dir := mkdir(t, root, "proj", time.Now())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module proj\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), nil, 0o644))

	entries := Scan(root)
	require.Len(t, entries, 1)

	markers := entries[0].Markers
	assert.True(t, markers["go"])
	assert.True(t, markers["git"])
	assert.True(t, markers["python"], "requirements.txt is an alternate python probe")
	assert.False(t, markers["cargo"])
	assert.False(t, markers["maven"])
}

func TestMarkerRegistryProbesAreNonEmpty(t *testing.T) {
	for _, m := range Registry {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Probes, "marker %s needs at least one probe path", m.Name)
	}
}
