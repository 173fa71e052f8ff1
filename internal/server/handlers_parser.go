package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"
)

func (s *Server) handleParseStatement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileID, err := req.RequireString("file_id")
	if err != nil {
		return toolError(err)
	}

	data, err := s.parser.ParseFromDrive(ctx, fileID)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(data)
}

func (s *Server) handleParseLocalStatement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return toolError(err)
	}

	data, err := s.parser.ParseLocal(ctx, path)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(data)
}

func (s *Server) handleCategorize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := req.RequireString("description")
	if err != nil {
		return toolError(err)
	}
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return toolError(err)
	}

	category, err := s.gemini.Categorize(ctx, description, decimal.NewFromFloat(amount))
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(category)), nil
}
