package internal

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/thn/internal/apperr"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token"}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "token is empty") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestConfig_VaultPathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("config without vault path should fail validation")
	}
	cfg.Vault.Path = "/vault"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPConfig_Address(t *testing.T) {
	c := HTTPConfig{Host: "127.0.0.1", Port: 8765}
	if got := c.Address(); got != "127.0.0.1:8765" {
		t.Errorf("address = %q", got)
	}
}

func TestConfigDir_Resolution(t *testing.T) {
	t.Setenv("THN_CONFIG_HOME", "/explicit")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigDir(); got != "/explicit" {
		t.Errorf("with THN_CONFIG_HOME: %q", got)
	}

	t.Setenv("THN_CONFIG_HOME", "")
	if got := ConfigDir(); got != filepath.Join("/xdg", "thn") {
		t.Errorf("with XDG_CONFIG_HOME: %q", got)
	}
	if got := DefaultConfigPath(); got != filepath.Join("/xdg", "thn", "config.yaml") {
		t.Errorf("default path: %q", got)
	}
}

func TestLoadConfig_NotConfigured(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if !errors.Is(err, apperr.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if err.Error() != "not configured. run 'thn init [PATH]' first" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thn", "config.yaml")
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/path/to/vault"
	cfg.App.LogLevel = slog.LevelDebug

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Vault.Path != "/path/to/vault" {
		t.Errorf("vault path = %q", got.Vault.Path)
	}
	if got.App.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", got.App.LogLevel)
	}
	if got.App.HTTP.Port != 8765 || got.Auth.Mode != AuthModeDisabled {
		t.Errorf("defaults lost: %+v", got)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("vault:\n  path: /notes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Vault.Path != "/notes" || cfg.App.HTTP.Host != "127.0.0.1" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestSaveAndLoadConfig_DollarInVaultPath(t *testing.T) {
	t.Setenv("Work", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/Users/me/Notes$Work"

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Vault.Path != "/Users/me/Notes$Work" {
		t.Errorf("vault path = %q, want %q", got.Vault.Path, cfg.Vault.Path)
	}
}
