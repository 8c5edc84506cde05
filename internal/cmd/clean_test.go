package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupBundles creates a directory of empty bundle files.
func setupBundles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0644))
	}
	return dir
}

// runAppsweep executes the root command with args and captures output.
func runAppsweep(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCleanExecuteDeletesDuplicates(t *testing.T) {
	dir := setupBundles(t, "A_1.0.0.app", "A_2.0.0.app", "B_1.0.app")
	logDir := filepath.Join(t.TempDir(), "logs")

	out, err := runAppsweep(t, "clean", dir, "--no-history", "--log-dir", logDir)
	require.NoError(t, err)

	assert.Contains(t, out, "DELETION COMPLETE")
	assert.Contains(t, out, "Removed 1 duplicate bundles")

	_, err = os.Stat(filepath.Join(dir, "A_1.0.0.app"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "A_2.0.0.app"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "B_1.0.app"))
	assert.NoError(t, err)
}

func TestCleanDryRunLeavesFiles(t *testing.T) {
	dir := setupBundles(t, "A_1.0.app", "A_2.0.app")
	logDir := filepath.Join(t.TempDir(), "logs")

	out, err := runAppsweep(t, "clean", dir, "--dry-run", "--no-history", "--log-dir", logDir)
	require.NoError(t, err)

	assert.Contains(t, out, "DRY RUN COMPLETE")
	assert.Contains(t, out, "Would delete 1 duplicate bundles")

	for _, name := range []string{"A_1.0.app", "A_2.0.app"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s must survive a dry run", name)
	}
}

func TestCleanUnparseableFilesDoNotFailRun(t *testing.T) {
	dir := setupBundles(t, "bad_name.app", "A_1.0.app", "A_2.0.app")
	logDir := filepath.Join(t.TempDir(), "logs")

	out, err := runAppsweep(t, "clean", dir, "--no-history", "--log-dir", logDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Could not parse filename: bad_name.app")
	assert.Contains(t, out, "Skipped 1 unparseable filenames")

	// The unparseable file is never deleted.
	_, err = os.Stat(filepath.Join(dir, "bad_name.app"))
	assert.NoError(t, err)
}

func TestCleanMissingDirectoryFails(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	missing := filepath.Join(t.TempDir(), "gone")

	_, err := runAppsweep(t, "clean", missing, "--no-history", "--log-dir", logDir)
	assert.Error(t, err)
}

func TestCleanWritesRunLog(t *testing.T) {
	dir := setupBundles(t, "A_1.0.app", "A_2.0.app")
	logDir := filepath.Join(t.TempDir(), "logs")

	_, err := runAppsweep(t, "clean", dir, "--no-history", "--log-dir", logDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Deleted: A_1.0.app")
}

func TestCleanRecordsHistory(t *testing.T) {
	dir := setupBundles(t, "A_1.0.app", "A_2.0.app")
	logDir := filepath.Join(t.TempDir(), "logs")
	home := t.TempDir()
	t.Setenv("APPSWEEP_HOME", home)

	_, err := runAppsweep(t, "clean", dir, "--log-dir", logDir)
	require.NoError(t, err)

	out, err := runAppsweep(t, "history", "show", "--db-path", filepath.Join(home, "history.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "Recent runs (1)")
	assert.Contains(t, out, "execute")
	assert.Contains(t, out, "deleted 1")
}

func TestCleanConfigFileRespected(t *testing.T) {
	dir := setupBundles(t, "Pkg_1.0.bundle", "Pkg_2.0.bundle")
	logDir := filepath.Join(t.TempDir(), "logs")

	cfgDir := filepath.Join(dir, ".appsweep")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"),
		[]byte("extension: .bundle\nhistory:\n  enabled: false\n"), 0644))

	out, err := runAppsweep(t, "clean", dir, "--log-dir", logDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Removed 1 duplicate bundles")
	_, err = os.Stat(filepath.Join(dir, "Pkg_1.0.bundle"))
	assert.True(t, os.IsNotExist(err))
}

func TestCleanInvalidLogLevelRejected(t *testing.T) {
	dir := setupBundles(t, "A_1.0.app")

	_, err := runAppsweep(t, "clean", dir, "--no-history", "--log-level", "shouty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
