// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes memo capture tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/thn/internal/apperr"
	"github.com/starford/thn/internal/capture"
)

// MemoFormatURI identifies the memo format resource.
const MemoFormatURI = "thn://memo-format"

// Server wraps the MCP server with memo tools.
type Server struct {
	mcp *server.MCPServer
	svc *capture.Service
}

// New creates a new MCP server with all memo tools registered.
func New(svc *capture.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"thn",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("append_memo",
		mcp.WithDescription("Append a timestamped memo to today's daily note in the Obsidian vault. "+
			"The memo is placed according to the vault's Daily Notes and Thino settings. "+
			"Text must be a single line."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Memo text (single line)")),
	), s.appendMemo)

	s.mcp.AddTool(mcp.NewTool("read_today",
		mcp.WithDescription("Read the full Markdown content of today's daily note."),
	), s.readToday)

	s.mcp.AddTool(mcp.NewTool("get_settings",
		mcp.WithDescription("Return the daily note folder, date format and memo section heading in effect."),
	), s.getSettings)

	s.mcp.AddTool(mcp.NewTool("get_memo_format",
		mcp.WithDescription("Returns how memos are formatted and placed in daily notes."),
	), s.getMemoFormat)

	s.mcp.AddResource(
		mcp.NewResource(MemoFormatURI, "Memo Format",
			mcp.WithResourceDescription("How memos are written into Obsidian daily notes."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readMemoFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) appendMemo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.Capture(ctx, text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readToday(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	note, err := s.svc.Today(ctx)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", s.svc.TodayPath())), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(note.Content), nil
}

func (s *Server) getSettings(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Settings(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getMemoFormat(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(MemoFormatContract), nil
}

func (s *Server) readMemoFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      MemoFormatURI,
			MIMEType: "text/markdown",
			Text:     MemoFormatContract,
		},
	}, nil
}
