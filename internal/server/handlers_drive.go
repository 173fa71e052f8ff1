package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleSearchFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	folderID := req.GetString("folder_id", "")
	maxResults := int64(req.GetFloat("max_results", 20))

	files, err := s.drive.Search(ctx, query, folderID, maxResults)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(files)
}

func (s *Server) handleMoveFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileID, err := req.RequireString("file_id")
	if err != nil {
		return toolError(err)
	}
	folderID, err := req.RequireString("folder_id")
	if err != nil {
		return toolError(err)
	}

	updated, err := s.drive.Move(ctx, fileID, folderID)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(updated)
}

func (s *Server) handleCreateFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err)
	}

	folder, err := s.drive.CreateFolder(ctx, name, req.GetString("parent_id", ""))
	if err != nil {
		return toolError(err)
	}
	return jsonResult(folder)
}
