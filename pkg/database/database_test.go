package database

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moyu-x/desktop-organizer/internal"
)

func TestNewDatabase(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "nested", "history.db")

	db, err := NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	if db.db == nil {
		t.Error("Expected database connection")
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected database file to be created")
	}
}

func TestDatabase_InsertAndRecent(t *testing.T) {
	tempDir := t.TempDir()

	db, err := NewDatabase(filepath.Join(tempDir, "history.db"))
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := &internal.RunRecord{
			RunID:     fmt.Sprintf("run-%d", i),
			TargetDir: "/home/user/Desktop",
			DryRun:    i%2 == 0,
			Stats:     internal.RunStats{Moved: i, Skipped: 1, FoldersCreated: 2, Errors: 0},
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Duration:  1500 * time.Millisecond,
		}
		if err := db.Insert(record); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	records, err := db.Recent(3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	if records[0].RunID != "run-4" {
		t.Errorf("Expected newest run first, got %s", records[0].RunID)
	}

	if records[0].Stats.Moved != 4 || records[0].Stats.FoldersCreated != 2 {
		t.Errorf("Unexpected stats: %+v", records[0].Stats)
	}

	if !records[0].DryRun {
		t.Error("Expected run-4 to be a dry run")
	}

	if records[0].Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %v", records[0].Duration)
	}
}

func TestDatabase_Insert_DuplicateRunID(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	record := &internal.RunRecord{RunID: "same", TargetDir: "/tmp", StartedAt: time.Now()}
	if err := db.Insert(record); err != nil {
		t.Fatalf("First Insert() error = %v", err)
	}

	if err := db.Insert(record); err == nil {
		t.Error("Expected error when inserting duplicate run id")
	}
}

func TestDatabase_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	db1, err := NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("First NewDatabase() error = %v", err)
	}

	if err := db1.Insert(&internal.RunRecord{RunID: "persistent", TargetDir: "/tmp", StartedAt: time.Now()}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := db1.Close(); err != nil {
		t.Fatalf("First Close() error = %v", err)
	}

	db2, err := NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("Second NewDatabase() error = %v", err)
	}
	defer db2.Close()

	records, err := db2.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}

	if len(records) != 1 || records[0].RunID != "persistent" {
		t.Errorf("Expected record to persist across reopen, got %+v", records)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/x/history.db")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}

	if got != filepath.Join(home, "x", "history.db") {
		t.Errorf("Expected %s, got %s", filepath.Join(home, "x", "history.db"), got)
	}

	if got, _ := ExpandPath("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("Expected absolute path unchanged, got %s", got)
	}
}
