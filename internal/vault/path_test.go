package vault

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/thn/internal/apperr"
	"github.com/starford/thn/internal/testutil"
)

func TestValidate_NotFound(t *testing.T) {
	err := Validate(filepath.Join(t.TempDir(), "nonexistent"))
	if !errors.Is(err, apperr.ErrVaultNotFound) {
		t.Errorf("err = %v, want ErrVaultNotFound", err)
	}
}

func TestValidate_NotObsidianVault(t *testing.T) {
	err := Validate(t.TempDir())
	if !errors.Is(err, apperr.ErrNotVault) {
		t.Errorf("err = %v, want ErrNotVault", err)
	}
}

func TestValidate_ObsidianFileIsNotDir(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, ".obsidian"), "")
	if err := Validate(root); !errors.Is(err, apperr.ErrNotVault) {
		t.Errorf("err = %v, want ErrNotVault", err)
	}
}

func TestValidate_Success(t *testing.T) {
	if err := Validate(testutil.Vault(t)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_ErrorMessage(t *testing.T) {
	err := Validate("/nonexistent/vault/path/12345")
	if err == nil || err.Error() != "vault not found: /nonexistent/vault/path/12345" {
		t.Errorf("err = %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cases := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/dev/note", filepath.Join(home, "dev/note")},
		{"  /absolute/path \n", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/notes", "~user/notes"},
	}
	for _, tc := range cases {
		got, err := ExpandPath(tc.in)
		if err != nil {
			t.Errorf("ExpandPath(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandPath_Empty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		if _, err := ExpandPath(in); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("ExpandPath(%q) err = %v, want ErrInvalidInput", in, err)
		}
	}
}
