package journal

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal"
)

func TestJournal_RecordAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()

	j, err := Open(fs, "/desk", "run1")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	expectedPath := filepath.Join("/desk", internal.LogDirName, "moves_run1.txt")
	if j.Path() != expectedPath {
		t.Errorf("Expected path %s, got %s", expectedPath, j.Path())
	}

	if err := j.Record("/desk/a.jpg", "/desk/images/a.jpg"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := j.Record("/desk/b.txt", "/desk/documents/b.txt"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if j.Count() != 2 {
		t.Errorf("Expected 2 records, got %d", j.Count())
	}

	if err := j.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	moves, err := Read(fs, expectedPath)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(moves) != 2 {
		t.Fatalf("Expected 2 moves, got %d", len(moves))
	}

	if moves[1].Source != "/desk/b.txt" || moves[1].Destination != "/desk/documents/b.txt" {
		t.Errorf("Unexpected move: %+v", moves[1])
	}
}

func TestJournal_CloseRemovesEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	j, err := Open(fs, "/desk", "empty")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := j.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if exists, _ := afero.Exists(fs, j.Path()); exists {
		t.Error("Expected empty journal to be removed")
	}
}

func TestJournal_ManyRecords(t *testing.T) {
	fs := afero.NewMemMapFs()

	j, err := Open(fs, "/desk", "many")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	const n = 250
	for i := 0; i < n; i++ {
		if err := j.Record(fmt.Sprintf("/desk/f%d.txt", i), fmt.Sprintf("/desk/documents/f%d.txt", i)); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	if err := j.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	moves, err := Read(fs, j.Path())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(moves) != n {
		t.Errorf("Expected %d moves, got %d", n, len(moves))
	}
}

func TestRead_Invalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/bad.txt", []byte("no-tab-here\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Read(fs, "/bad.txt"); err == nil {
		t.Error("Expected error for malformed journal line")
	}
}
