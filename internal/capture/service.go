// Package capture ties vault settings to the memo appender. It is the single
// entry point shared by the CLI, HTTP and MCP surfaces.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/starford/thn/internal/apperr"
	"github.com/starford/thn/internal/checksum"
	"github.com/starford/thn/internal/memo"
	"github.com/starford/thn/internal/storage"
	"github.com/starford/thn/internal/vault"
)

// Notifier is told about every successful capture.
type Notifier interface {
	MemoAppended(res *memo.Result)
}

// Settings is the effective placement configuration of a vault.
type Settings struct {
	Folder      string `json:"folder"`
	Format      string `json:"format"`
	InsertAfter string `json:"insert_after"`
}

// Note is a daily note as read from disk.
type Note struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Checksum string `json:"checksum"`
}

// Option is a functional option for configuring a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock sets the time source for the note date and entry stamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithNotifier registers a Notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// Service captures memos into the daily notes of one vault.
type Service struct {
	root     string
	logger   *slog.Logger
	now      func() time.Time
	notifier Notifier
	appender *memo.Appender
}

// NewService creates a Service for the vault at root. The root is used as
// given; callers validate it beforehand.
func NewService(root string, opts ...Option) *Service {
	s := &Service{
		root:   root,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.appender = memo.NewAppender(memo.WithClock(s.now), memo.WithLogger(s.logger))
	return s
}

// Root returns the vault root.
func (s *Service) Root() string {
	return s.root
}

// Settings reads the vault settings. They are loaded on every call so edits
// made in Obsidian apply to the next capture.
func (s *Service) Settings() Settings {
	daily := vault.LoadDailyNotes(s.root, s.logger)
	thino := vault.LoadThino(s.root, s.logger)
	return Settings{
		Folder:      daily.Folder,
		Format:      daily.Format,
		InsertAfter: thino.InsertAfter,
	}
}

// Capture appends text to today's daily note. A trailing line break is
// dropped and the rest of text is kept as given; blank text is rejected with
// apperr.ErrInvalidInput.
func (s *Service) Capture(_ context.Context, text string) (*memo.Result, error) {
	text = strings.TrimRight(text, "\r\n")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: memo content is required", apperr.ErrInvalidInput)
	}

	set := s.Settings()
	res, err := s.appender.Append(s.root, set.Folder, set.Format, set.InsertAfter, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info("memo captured",
		slog.String("path", res.Path),
		slog.Bool("created", res.Created))
	if s.notifier != nil {
		s.notifier.MemoAppended(res)
	}
	return res, nil
}

// TodayPath returns the vault-relative path of today's daily note.
func (s *Service) TodayPath() string {
	set := s.Settings()
	return memo.NoteRelPath(set.Folder, memo.FormatDate(set.Format, s.now()))
}

// Today reads today's daily note. A note that has not been created yet is
// reported as apperr.ErrNotFound.
func (s *Service) Today(_ context.Context) (*Note, error) {
	store, err := storage.NewFS(s.root)
	if err != nil {
		return nil, err
	}
	rel := s.TodayPath()
	data, err := store.Read(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrNotFound, rel)
		}
		return nil, err
	}
	return &Note{Path: rel, Content: string(data), Checksum: checksum.Sum(data)}, nil
}
