package api

import (
	"github.com/starford/thn/internal/capture"
	"github.com/starford/thn/internal/memo"
)

// CreateMemoRequest is the request body for capturing a memo.
type CreateMemoRequest struct {
	Text string `json:"text"`
}

// MemoResponse describes where a captured memo landed.
type MemoResponse = memo.Result

// SettingsResponse is the effective vault configuration.
type SettingsResponse = capture.Settings
