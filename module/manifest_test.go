package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyfoo/report"
)

func writeManifest(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(contents), 0o644))
}

func TestLoadManifestParsesModuleFile(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
name = "collections"
kyfoo-version = "0.1"
imports = ["core"]
sources = ["tree.ky", "list.ky"]
`)

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "collections", m.Name)
	assert.Equal(t, dir, m.AbsPath)
	assert.Equal(t, []string{"core"}, m.Imports)
	assert.Equal(t, []string{"tree.ky", "list.ky"}, m.SourceFiles)
}

func TestLoadManifestMissingNameFails(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `kyfoo-version = "0.1"`)

	_, err := LoadManifest(dir)
	assert.Error(t, err)
}

func TestLoadManifestMissingFileFails(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	assert.Error(t, err)
}

func TestWarnVersionMismatchOnlyWarnsOnMismatch(t *testing.T) {
	r := report.NewReporter(report.LogLevelSilent)
	WarnVersionMismatch(r, "collections", "0.1", "0.1")
	assert.Equal(t, 0, len(r.Messages()), "matching versions must not produce a diagnostic")

	WarnVersionMismatch(r, "collections", "0.1", "0.2")
	msgs := r.Messages()
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].IsError, "a version mismatch is a warning, not an error")
	assert.Equal(t, 0, r.ErrorCount(), "a warning must never count against ErrorCount")
}
