package memo

import (
	"log/slog"
	"strings"
	"time"

	"github.com/starford/thn/internal/storage"
)

// OpenFunc opens the storage provider for a vault root.
type OpenFunc func(root string) (storage.Provider, error)

// Option is a functional option for configuring an Appender.
type Option func(*Appender)

// WithClock sets the time source used for the note date and entry stamp.
func WithClock(now func() time.Time) Option {
	return func(a *Appender) {
		a.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Appender) {
		a.logger = logger
	}
}

// WithStorage overrides how the vault root is opened.
func WithStorage(open OpenFunc) Option {
	return func(a *Appender) {
		a.open = open
	}
}

// Appender adds entries to daily notes. It holds no per-note state and may
// be reused across calls.
type Appender struct {
	now    func() time.Time
	logger *slog.Logger
	open   OpenFunc
}

// Result describes one completed append.
type Result struct {
	Path    string `json:"path"`    // absolute note path
	Line    string `json:"line"`    // entry line without terminator
	Offset  int    `json:"offset"`  // byte offset the entry was inserted at
	Created bool   `json:"created"` // note did not exist before this append
}

// NewAppender creates an Appender writing to the local file system.
func NewAppender(opts ...Option) *Appender {
	a := &Appender{
		now:    time.Now,
		logger: slog.Default(),
		open: func(root string) (storage.Provider, error) {
			return storage.NewFS(root)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Append inserts text as a timestamped entry into today's daily note under
// root. The note lives at root/folder/<date>.md where <date> is today
// rendered with dateFormat. insertAfter names the heading whose section
// receives the entry and seeds newly created notes; empty means the entry
// goes to the end of the note.
func (a *Appender) Append(root, folder, dateFormat, insertAfter, text string) (*Result, error) {
	if strings.ContainsAny(text, "\r\n") {
		return nil, ErrMultilineText
	}

	now := a.now()
	date := FormatDate(dateFormat, now)
	rel := NoteRelPath(folder, date)

	store, err := a.open(root)
	if err != nil {
		return nil, err
	}

	created, err := Ensure(store, rel, insertAfter)
	if err != nil {
		return nil, err
	}

	data, err := store.Read(rel)
	if err != nil {
		return nil, err
	}
	content := string(data)

	offset := InsertOffset(content, insertAfter)
	line := FormatEntry(text, now)
	path := NotePath(root, folder, date)

	if err := store.Write(rel, []byte(splice(content, offset, line))); err != nil {
		return nil, &WriteFailedError{Path: path, Err: err}
	}

	a.logger.Debug("memo: appended",
		slog.String("path", path),
		slog.Int("offset", offset),
		slog.Bool("created", created))

	return &Result{Path: path, Line: line, Offset: offset, Created: created}, nil
}

// splice inserts line at offset. Only line terminators are added around the
// entry; the bytes before and after offset are kept verbatim.
func splice(content string, offset int, line string) string {
	before, after := content[:offset], content[offset:]

	var b strings.Builder
	b.Grow(len(content) + len(line) + 2)
	b.WriteString(before)
	if before != "" && !strings.HasSuffix(before, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(after)
	return b.String()
}
