// Package server exposes the budget pipeline as MCP tools over stdio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/budgetlens-dev/budgetlens/internal/advisor"
	"github.com/budgetlens-dev/budgetlens/internal/config"
	"github.com/budgetlens-dev/budgetlens/internal/drive"
	"github.com/budgetlens-dev/budgetlens/internal/gemini"
	"github.com/budgetlens-dev/budgetlens/internal/googleauth"
	"github.com/budgetlens-dev/budgetlens/internal/parser"
	"github.com/budgetlens-dev/budgetlens/internal/sheets"
)

// Server wires every component behind the MCP tool surface. All clients are
// constructed eagerly at startup and injected; there is no lazy singleton
// initialization to race on.
type Server struct {
	cfg       *config.Config
	drive     *drive.Client
	sheetsSvc *sheetsapi.Service
	gemini    *gemini.Client
	parser    *parser.Parser
	advisor   *advisor.Advisor
	logger    *slog.Logger
	mcp       *mcpserver.MCPServer
}

// New constructs the server and all of its clients. Failing here is the
// right place to fail: a missing API key or credential should stop the
// process before any tool call arrives.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	auth, err := googleauth.NewManager(cfg.CredentialsPath, cfg.TokenPath, logger)
	if err != nil {
		return nil, err
	}

	driveSvc, err := auth.DriveService(ctx)
	if err != nil {
		return nil, err
	}

	sheetsSvc, err := auth.SheetsService(ctx)
	if err != nil {
		return nil, err
	}

	geminiClient, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		return nil, err
	}

	driveClient := drive.NewClient(driveSvc, logger)

	s := &Server{
		cfg:       cfg,
		drive:     driveClient,
		sheetsSvc: sheetsSvc,
		gemini:    geminiClient,
		parser:    parser.New(driveClient, geminiClient, logger),
		advisor:   advisor.New(geminiClient, logger),
		logger:    logger,
	}

	s.mcp = mcpserver.NewMCPServer("budgetlens", Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.registerTools()

	return s, nil
}

// Run serves MCP over stdio until the client disconnects. Tool calls are
// handled one at a time; stdout belongs to the protocol.
func (s *Server) Run() error {
	s.logger.Info("budgetlens MCP server ready", "version", Version)
	return mcpserver.ServeStdio(s.mcp)
}

// store binds the shared Sheets service to the spreadsheet named by the
// tool call, falling back to the configured default id.
func (s *Server) store(explicitID string) (*sheets.Store, error) {
	id, err := s.cfg.ResolveSpreadsheetID(explicitID)
	if err != nil {
		return nil, err
	}
	return sheets.NewStore(s.sheetsSvc, id, s.logger), nil
}

// jsonResult marshals v and wraps it as a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// toolError surfaces a domain error to the calling agent verbatim. The
// transport-level error stays nil: the call itself succeeded.
func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
