package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/thn/internal"
	"github.com/starford/thn/internal/apperr"
	"github.com/starford/thn/internal/testutil"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// runThn runs the command tree with args against the given config dir.
func runThn(t *testing.T, configDir, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("THN_CONFIG_HOME", configDir)

	var stdout, stderr bytes.Buffer
	a := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := newCommand(a).Run(context.Background(), append([]string{"thn"}, args...))
	if err != nil {
		a.printer.Error(err)
	}
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func todayNote(root string) string {
	return filepath.Join(root, time.Now().Format("2006-01-02")+".md")
}

func TestInitCaptureConfigFlow(t *testing.T) {
	root := testutil.Vault(t)
	testutil.WriteDailyNotesSettings(t, root, `{"folder": "", "format": "YYYY-MM-DD"}`)
	configDir := t.TempDir()

	if r := runThn(t, configDir, "", "init", root); r.err != nil {
		t.Fatalf("init: %v", r.err)
	}
	if r := runThn(t, configDir, "", "テストメモ"); r.err != nil {
		t.Fatalf("capture: %v", r.err)
	}

	r := runThn(t, configDir, "", "config")
	if r.err != nil {
		t.Fatalf("config: %v", r.err)
	}
	for _, key := range []string{"vault_path: " + root, "daily_folder:", "daily_format: YYYY-MM-DD", "insert_after:"} {
		if !strings.Contains(r.stdout, key) {
			t.Errorf("config output missing %q:\n%s", key, r.stdout)
		}
	}

	content := testutil.ReadFile(t, todayNote(root))
	if !strings.Contains(content, "テストメモ") {
		t.Errorf("note content = %q", content)
	}
}

func TestCapture_WithThinoHeader(t *testing.T) {
	root := testutil.Vault(t)
	testutil.WriteThinoSettings(t, root, `{"InsertAfter": "# Memos"}`)
	configDir := t.TempDir()

	runThn(t, configDir, "", "init", root)
	if r := runThn(t, configDir, "", "add", "Thino形式テスト"); r.err != nil {
		t.Fatalf("add: %v", r.err)
	}

	content := testutil.ReadFile(t, todayNote(root))
	if !strings.HasPrefix(content, "# Memos\n- ") || !strings.Contains(content, "Thino形式テスト") {
		t.Errorf("note content = %q", content)
	}
}

func TestCapture_JoinsArgs(t *testing.T) {
	root := testutil.Vault(t)
	configDir := t.TempDir()
	runThn(t, configDir, "", "init", root)

	for i := 1; i <= 3; i++ {
		if r := runThn(t, configDir, "", "memo", string(rune('0'+i)), "done"); r.err != nil {
			t.Fatalf("capture %d: %v", i, r.err)
		}
	}
	content := testutil.ReadFile(t, todayNote(root))
	for _, want := range []string{" memo 1 done\n", " memo 2 done\n", " memo 3 done\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("note missing %q: %q", want, content)
		}
	}
}

func TestErrors(t *testing.T) {
	configDir := t.TempDir()
	notVault := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "memo required", args: nil, wantErr: "error: memo content required"},
		{name: "not configured", args: []string{"テストメモ"}, wantErr: "error: not configured"},
		{name: "config not configured", args: []string{"config"}, wantErr: "error: not configured"},
		{name: "vault not found", args: []string{"init", "/nonexistent/path/to/vault"}, wantErr: "error: vault not found"},
		{name: "not an obsidian vault", args: []string{"init", notVault}, wantErr: "error: not an obsidian vault"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runThn(t, configDir, "", tt.args...)
			if r.err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(r.stderr, tt.wantErr) {
				t.Errorf("stderr = %q, want %q", r.stderr, tt.wantErr)
			}
		})
	}
}

func TestInit_Prompt(t *testing.T) {
	root := testutil.Vault(t)
	configDir := t.TempDir()

	r := runThn(t, configDir, root+"\n", "init")
	if r.err != nil {
		t.Fatalf("init: %v", r.err)
	}
	if !strings.HasPrefix(r.stdout, "Vault path: ") {
		t.Errorf("prompt missing: %q", r.stdout)
	}
	cfg, err := internal.LoadConfig(filepath.Join(configDir, internal.ConfigFileName))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Vault.Path != root {
		t.Errorf("vault path = %q, want %q", cfg.Vault.Path, root)
	}
}

func TestInit_EmptyPrompt(t *testing.T) {
	r := runThn(t, t.TempDir(), "\n", "init")
	if !errors.Is(r.err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", r.err)
	}
}

func TestInit_KeepsOtherSettings(t *testing.T) {
	first := testutil.Vault(t)
	second := testutil.Vault(t)
	configDir := t.TempDir()
	path := filepath.Join(configDir, internal.ConfigFileName)

	runThn(t, configDir, "", "init", first)
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.App.HTTP.Port = 9999
	if err := internal.SaveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}

	if r := runThn(t, configDir, "", "init", second); r.err != nil {
		t.Fatalf("re-init: %v", r.err)
	}
	cfg, err = internal.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Vault.Path != second || cfg.App.HTTP.Port != 9999 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestCapture_VaultRemovedAfterInit(t *testing.T) {
	root := testutil.Vault(t)
	configDir := t.TempDir()
	runThn(t, configDir, "", "init", root)

	if err := os.RemoveAll(root); err != nil {
		t.Fatal(err)
	}
	r := runThn(t, configDir, "", "memo")
	if !errors.Is(r.err, apperr.ErrVaultNotFound) {
		t.Fatalf("err = %v, want ErrVaultNotFound", r.err)
	}
}
