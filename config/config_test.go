package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyu-x/desktop-organizer/internal"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `target_dir: /srv/inbox
dry_run: true
logging:
  enabled: false
  level: debug
history:
  path: /tmp/history.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/inbox", c.TargetDir)
	assert.True(t, c.DryRun)
	assert.False(t, c.Logging.Enabled)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.History.Enabled)
	assert.Equal(t, "/tmp/history.db", c.History.Path)
}

func TestLoadFile_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, DesktopDir(), c.TargetDir)
	assert.False(t, c.DryRun)
	assert.True(t, c.Logging.Enabled)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, internal.DefaultHistoryPath, c.History.Path)
}

func TestLoad_Env(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("ORGANIZER_TARGET_DIR", "/from/env")
	t.Setenv("ORGANIZER_DRY_RUN", "true")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", c.TargetDir)
	assert.True(t, c.DryRun)
}

func TestDesktopDir(t *testing.T) {
	assert.Equal(t, "Desktop", filepath.Base(DesktopDir()))
}
