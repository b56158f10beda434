package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/thn/internal/apperr"
)

// Validate checks that path exists and carries an .obsidian directory.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", apperr.ErrVaultNotFound, path)
		}
		return fmt.Errorf("vault: stat %s: %w", path, err)
	}
	info, err := os.Stat(filepath.Join(path, obsidianDir))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", apperr.ErrNotVault, path)
	}
	return nil
}

// ExpandPath trims user input and expands a leading "~" to the home
// directory. Relative paths are returned as given.
func ExpandPath(input string) (string, error) {
	p := strings.TrimSpace(input)
	if p == "" {
		return "", fmt.Errorf("%w: vault path is required", apperr.ErrInvalidInput)
	}
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p, nil
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}
