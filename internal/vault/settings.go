// Package vault reads Obsidian vault identity and the plugin settings that
// decide where daily-note memos go.
package vault

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/thn/internal/memo"
)

const obsidianDir = ".obsidian"

// DailyNotesSettings mirrors .obsidian/daily-notes.json.
type DailyNotesSettings struct {
	Folder string `json:"folder"`
	Format string `json:"format"`
}

// ThinoSettings mirrors the Thino (obsidian-memos) plugin data.json.
type ThinoSettings struct {
	InsertAfter string `json:"InsertAfter"`
}

// DefaultDailyNotesSettings returns the values Obsidian uses when the daily
// notes plugin has never been configured.
func DefaultDailyNotesSettings() DailyNotesSettings {
	return DailyNotesSettings{Folder: "", Format: memo.DefaultDateFormat}
}

// LoadDailyNotes reads the daily notes settings of the vault at root. A
// missing or unreadable file yields the defaults; absent fields keep theirs.
func LoadDailyNotes(root string, logger *slog.Logger) DailyNotesSettings {
	s := DefaultDailyNotesSettings()
	path := filepath.Join(root, obsidianDir, "daily-notes.json")
	if !readJSON(path, &s, logger) {
		return DefaultDailyNotesSettings()
	}
	if s.Format == "" {
		s.Format = memo.DefaultDateFormat
	}
	return s
}

// LoadThino reads the Thino plugin settings of the vault at root, with the
// same fallback rules as LoadDailyNotes.
func LoadThino(root string, logger *slog.Logger) ThinoSettings {
	var s ThinoSettings
	path := filepath.Join(root, obsidianDir, "plugins", "obsidian-memos", "data.json")
	if !readJSON(path, &s, logger) {
		return ThinoSettings{}
	}
	return s
}

// readJSON decodes path into v and reports whether it succeeded. Failures
// are logged at debug level only.
func readJSON(path string, v any, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("vault: settings unavailable, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Debug("vault: settings malformed, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
