package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{name: "never disables on TTY", colorMode: "never", isTTY: true, want: false},
		{name: "always enables on non-TTY", colorMode: "always", isTTY: false, want: true},
		{name: "auto uses TTY true", colorMode: "auto", isTTY: true, want: true},
		{name: "auto uses TTY false", colorMode: "auto", isTTY: false, want: false},
		{name: "unknown value defaults to auto", colorMode: "bogus", isTTY: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColorMode(tt.colorMode, tt.isTTY); got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestPrinter_PlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false).WithStderr(&errOut, false)

	p.KeyValue("vault_path", "/vault")
	p.Success("added to %s", "2024-01-15.md")
	p.Error(errors.New("not configured"))

	if got := out.String(); got != "vault_path: /vault\nadded to 2024-01-15.md\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); got != "error: not configured\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestPrinter_NoColorWithoutTTY(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, false)
	if p.IsTTY() {
		t.Error("printer should report non-TTY")
	}
	empty := lipgloss.NewStyle()
	if p.styles.Error.GetForeground() != empty.GetForeground() {
		t.Error("Error style should have no foreground color without a TTY")
	}
}

func TestPrinter_ErrorStylingFollowsStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, true).WithStderr(&errOut, false)
	if p.errorMark.GetForeground() != lipgloss.NewStyle().GetForeground() {
		t.Error("error style should be plain when stderr is not a TTY")
	}

	p.Error(errors.New("boom"))
	if got := errOut.String(); got != "error: boom\n" {
		t.Errorf("stderr = %q", got)
	}

	p = NewPrinter(&out, false).WithStderr(&errOut, true)
	if p.errorMark.GetForeground() == lipgloss.NewStyle().GetForeground() {
		t.Error("error style should be colored when stderr is a TTY")
	}
}
