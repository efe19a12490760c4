package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStatusCommand(t *testing.T) {
	dir := writeMappings(t, map[string]string{
		"fresh.csv":  "1;a.m2\n",
		"old.txt":    "2;b.m2\n",
		"notes.json": "{}",
	})
	old := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "old.txt"), old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	t.Run("text", func(t *testing.T) {
		resetFlags(dir)
		statusMaxAge = 7 * 24 * time.Hour
		output, err := captureOutput(t, runStatus)
		if err != nil {
			t.Fatalf("runStatus() error = %v", err)
		}
		assertContains(t, output, []string{"fresh.csv", "up to date", "old.txt", "outdated"})
		assertNotContains(t, output, []string{"notes.json"})
	})

	t.Run("longer max age", func(t *testing.T) {
		resetFlags(dir)
		statusMaxAge = 60 * 24 * time.Hour
		output, err := captureOutput(t, runStatus)
		if err != nil {
			t.Fatalf("runStatus() error = %v", err)
		}
		assertNotContains(t, output, []string{"outdated"})
	})

	t.Run("json", func(t *testing.T) {
		resetFlags(dir)
		jsonOut = true
		statusMaxAge = 7 * 24 * time.Hour
		output, err := captureOutput(t, runStatus)
		if err != nil {
			t.Fatalf("runStatus() error = %v", err)
		}
		assertJSON(t, output)
		assertContains(t, output, []string{`"name": "old.txt"`, `"outdated": true`, `"outdated": false`})
	})
}

func TestStatusCommand_Empty(t *testing.T) {
	dir := writeMappings(t, nil)
	resetFlags(dir)

	output, err := captureOutput(t, runStatus)
	if err != nil {
		t.Fatalf("runStatus() error = %v", err)
	}
	assertContains(t, output, []string{"No listing files found"})
}

func TestStatusCommand_MissingDirectory(t *testing.T) {
	resetFlags(filepath.Join(t.TempDir(), "missing"))

	if _, err := captureOutput(t, runStatus); err == nil {
		t.Error("expected error for missing mappings directory")
	}
}
