// Package testutil holds shared helpers for the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestCSV writes a word list CSV into a temp directory and returns
// its path. Rows are written verbatim, one per line.
func CreateTestCSV(t *testing.T, rows ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.csv")
	CreateTestFile(t, path, []byte(strings.Join(rows, "\n")+"\n"))
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}
