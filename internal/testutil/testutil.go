// Package testutil provides shared test helpers for setting up vaults.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// Vault creates a temporary Obsidian vault (a directory holding .obsidian)
// and returns its path.
func Vault(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".obsidian"), 0o755); err != nil {
		t.Fatal(err)
	}
	return root
}

// WriteDailyNotesSettings writes .obsidian/daily-notes.json into the vault.
func WriteDailyNotesSettings(t *testing.T, root, json string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, ".obsidian", "daily-notes.json"), json)
}

// WriteThinoSettings writes the Thino plugin data.json into the vault.
func WriteThinoSettings(t *testing.T, root, json string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, ".obsidian", "plugins", "obsidian-memos", "data.json"), json)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// Logger returns a logger that drops everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
