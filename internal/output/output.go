// Package output renders human-readable CLI output with lipgloss.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes results to w and errors to errW.
type Printer struct {
	w         io.Writer
	errW      io.Writer
	isTTY     bool
	styles    *Styles
	errorMark lipgloss.Style
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Key     lipgloss.Style
	Muted   lipgloss.Style
}

// NewPrinter creates a Printer. Colors are enabled only when isTTY is true.
func NewPrinter(writer io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),           // Cyan
		Muted:   lipgloss.NewStyle().Faint(true),
	}

	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Key = lipgloss.NewStyle()
		styles.Muted = lipgloss.NewStyle()
	}

	return &Printer{
		w:         writer,
		errW:      writer,
		isTTY:     isTTY,
		styles:    styles,
		errorMark: styles.Error,
	}
}

// WithStderr sets a separate writer for errors. isTTY decides error styling
// for that writer independently of the main output. Returns the printer for
// chaining.
func (p *Printer) WithStderr(w io.Writer, isTTY bool) *Printer {
	p.errW = w
	p.errorMark = lipgloss.NewStyle()
	if isTTY {
		p.errorMark = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}
	return p
}

// IsTTY returns true if the printer output is a TTY.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// KeyValue prints a "key: value" line.
func (p *Printer) KeyValue(key string, value any) {
	fmt.Fprintf(p.w, "%s %v\n", p.styles.Key.Render(key+":"), value)
}

// Muted prints a de-emphasized line.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

// Error prints "error: <message>" to the error writer.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errW, "%s %s\n", p.errorMark.Render("error:"), err.Error())
}

// ResolveColorMode determines the effective isTTY value from a --color
// setting of "never", "always" or "auto".
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
