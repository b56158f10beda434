package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starford/thn/internal/apperr"
	"github.com/starford/thn/internal/capture"
	"github.com/starford/thn/internal/checksum"
	"github.com/starford/thn/internal/memo"
)

// maxMemoBody bounds the request body of POST /memos.
const maxMemoBody = 64 << 10

// Handler holds API route handlers.
type Handler struct {
	svc *capture.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *capture.Service) *Handler {
	return &Handler{svc: svc}
}

// CreateMemo handles POST /api/memos.
func (h *Handler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMemoBody)
	var req CreateMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	res, err := h.svc.Capture(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, memo.ErrMultilineText):
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		default:
			slog.Error("capture memo failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		}
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// GetToday handles GET /api/today. The note is returned as raw Markdown.
func (h *Handler) GetToday(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.Today(r.Context())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("today's note does not exist yet"))
			return
		}
		slog.Error("read today failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	etag := checksum.ETag([]byte(note.Content))
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Note-Path", note.Path)
	if checksum.Match(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(note.Content))
}

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SettingsResponse(h.svc.Settings()))
}
