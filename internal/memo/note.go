package memo

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/starford/thn/internal/storage"
)

const noteExt = ".md"

// NotePath returns the daily note location for a rendered date under root.
// An empty folder places the note directly in root.
func NotePath(root, folder, date string) string {
	return filepath.Join(root, NoteRelPath(folder, date))
}

// NoteRelPath is NotePath relative to the vault root.
func NoteRelPath(folder, date string) string {
	return filepath.Join(folder, date+noteExt)
}

// Ensure creates the note at path when it does not exist yet, seeding it
// with header on its own line when header is non-empty. Existing notes are
// left untouched. created reports whether the note was made by this call.
func Ensure(store storage.Provider, path, header string) (created bool, err error) {
	var seed []byte
	if header = strings.TrimSpace(header); header != "" {
		seed = []byte(header + "\n")
	}
	if err := store.Create(path, seed); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
