// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/cheatmenu/internal/catalog"
	"github.com/atomicstack/cheatmenu/internal/store"
)

const entriesFile = "entries.json"

// SampleGroups returns a small two-group catalog.
func SampleGroups() []catalog.Group {
	return []catalog.Group{
		catalog.NewGroup("build", []catalog.Entry{
			{Command: "make", ShortInfo: "build everything", LongInfo: "runs make in the current directory"},
			{Command: "make install", ShortInfo: "install", LongInfo: "copies binaries into PREFIX"},
		}),
		catalog.NewGroup("files", []catalog.Entry{
			{Command: "ls -la", ShortInfo: "list all", LongInfo: "lists hidden files too"},
		}),
	}
}

// WriteEntries saves groups to a fresh entries file and returns its path.
func WriteEntries(t testing.TB, groups []catalog.Group) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), entriesFile)
	if err := store.Save(path, groups); err != nil {
		t.Fatalf("failed to seed entries: %v", err)
	}
	return path
}

// WriteRaw writes content verbatim to a fresh entries file.
func WriteRaw(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), entriesFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write entries: %v", err)
	}
	return path
}

// MissingPath returns a path inside a not yet existing directory.
func MissingPath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing", entriesFile)
}
