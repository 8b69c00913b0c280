package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyu-x/desktop-organizer/internal"
	"github.com/moyu-x/desktop-organizer/internal/organizer"
	"github.com/moyu-x/desktop-organizer/pkg/database"
	"github.com/moyu-x/desktop-organizer/pkg/journal"
)

func writeSamples(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

func listAll(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	require.NoError(t, filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	}))
	return paths
}

func TestRunOrganize_Apply(t *testing.T) {
	target := t.TempDir()
	historyPath := filepath.Join(t.TempDir(), "history.db")
	writeSamples(t, target, "photo.jpg", "video.MP4", "notes.txt", "mystery.xyz")

	report, err := RunOrganize(&OrganizeOptions{
		TargetDir:   target,
		Logging:     true,
		LogLevel:    "info",
		HistoryPath: historyPath,
	})
	require.NoError(t, err)

	assert.Equal(t, internal.RunStats{Moved: 4, FoldersCreated: 4}, report.Stats)
	assert.NotEmpty(t, report.RunID)

	logs, err := os.ReadDir(filepath.Join(target, internal.LogDirName))
	require.NoError(t, err)

	var logFiles int
	for _, entry := range logs {
		if strings.HasPrefix(entry.Name(), "organizer_") && strings.HasSuffix(entry.Name(), ".log") {
			logFiles++
		}
	}
	assert.Equal(t, 1, logFiles, "expected one run log file")

	require.NotEmpty(t, report.JournalPath)
	moves, err := journal.Read(afero.NewOsFs(), report.JournalPath)
	require.NoError(t, err)
	assert.Len(t, moves, 4)

	db, err := database.NewDatabase(historyPath)
	require.NoError(t, err)
	defer db.Close()

	records, err := db.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, report.RunID, records[0].RunID)
	assert.Equal(t, 4, records[0].Stats.Moved)

	// 第二次运行不再移动任何文件
	second, err := RunOrganize(&OrganizeOptions{TargetDir: target, Logging: true})
	require.NoError(t, err)
	assert.Equal(t, internal.RunStats{}, second.Stats)
	assert.Empty(t, second.JournalPath)
}

func TestRunOrganize_DryRunLeavesTreeUntouched(t *testing.T) {
	target := t.TempDir()
	writeSamples(t, target, "photo.jpg", "video.MP4", "notes.txt", "mystery.xyz")

	before := listAll(t, target)

	report, err := RunOrganize(&OrganizeOptions{TargetDir: target, DryRun: true, Logging: true})
	require.NoError(t, err)

	assert.Equal(t, internal.RunStats{Moved: 4, FoldersCreated: 4}, report.Stats)
	assert.Equal(t, before, listAll(t, target))
	assert.Contains(t, report.Table(), "预览")
}

func TestRunOrganize_MissingTarget(t *testing.T) {
	_, err := RunOrganize(&OrganizeOptions{TargetDir: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, organizer.ErrTargetUnavailable)
}

// unreadableFs 目录本身存在，但无法列出内容
type unreadableFs struct {
	afero.Fs
	dir string
}

func (f *unreadableFs) Open(name string) (afero.File, error) {
	if name == f.dir {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

func TestRunOrganize_UnreadableTargetLeavesNoLogs(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/desk/a.pdf", []byte("a"), 0644))
	fs := &unreadableFs{Fs: mem, dir: "/desk"}

	_, err := RunOrganize(&OrganizeOptions{TargetDir: "/desk", Logging: true, Fs: fs})
	assert.ErrorIs(t, err, organizer.ErrTargetUnavailable)

	exists, _ := afero.DirExists(mem, filepath.Join("/desk", internal.LogDirName))
	assert.False(t, exists, "log folder must not be created for an unusable target")
}

func TestRunOrganize_JournalCount(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/desk/a.pdf", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/desk/b.png", []byte("b"), 0644))

	report, err := RunOrganize(&OrganizeOptions{TargetDir: "/desk", Fs: fs})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Journaled)
	assert.NotEmpty(t, report.JournalPath)

	// 没有文件可移动时不保留记录文件
	report, err = RunOrganize(&OrganizeOptions{TargetDir: "/desk", Fs: fs})
	require.NoError(t, err)
	assert.Zero(t, report.Journaled)
	assert.Empty(t, report.JournalPath)
}

func TestRunOrganize_MemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/desk/a.pdf", []byte("a"), 0644))

	report, err := RunOrganize(&OrganizeOptions{TargetDir: "/desk", Logging: false, Fs: fs})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Stats.Moved)

	exists, _ := afero.Exists(fs, "/desk/documents/a.pdf")
	assert.True(t, exists)

	logs, err := afero.ReadDir(fs, filepath.Join("/desk", internal.LogDirName))
	require.NoError(t, err)
	for _, entry := range logs {
		assert.False(t, strings.HasSuffix(entry.Name(), ".log"), "logging disabled but found %s", entry.Name())
	}
}

func TestAcquireLock_Exclusive(t *testing.T) {
	target := t.TempDir()
	fs := afero.NewOsFs()

	unlock, err := acquireLock(fs, target)
	require.NoError(t, err)

	_, err = acquireLock(fs, target)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	unlock()

	unlock, err = acquireLock(fs, target)
	require.NoError(t, err)
	unlock()
}
