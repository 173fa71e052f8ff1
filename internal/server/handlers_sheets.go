package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/budgetlens-dev/budgetlens/internal/budget"
	"github.com/budgetlens-dev/budgetlens/internal/model"
)

// queryWindow bounds how many stored rows a search or summary considers,
// matching the read limit the store tools have always used.
const queryWindow = 1000

func (s *Server) handleInitStore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	storeID, err := req.RequireString("store_id")
	if err != nil {
		return toolError(err)
	}

	store, err := s.store(storeID)
	if err != nil {
		return toolError(err)
	}

	meta, err := store.Init(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(meta)
}

func (s *Server) handleSaveTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Transactions []model.Transaction `json:"transactions"`
		AccountInfo  model.AccountInfo   `json:"account_info"`
		StoreID      string              `json:"store_id"`
	}
	if err := req.BindArguments(&args); err != nil {
		return toolError(err)
	}

	store, err := s.store(args.StoreID)
	if err != nil {
		return toolError(err)
	}

	added, err := store.Append(ctx, args.Transactions, args.AccountInfo)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(map[string]int{"rows_added": added})
}

func (s *Server) handleGetRecent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := int(req.GetFloat("limit", 50))

	store, err := s.store(req.GetString("store_id", ""))
	if err != nil {
		return toolError(err)
	}

	txns, err := store.Recent(ctx, limit)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(txns)
}

func (s *Server) handleSearchTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := budget.Filter{
		Category:  req.GetString("category", ""),
		StartDate: req.GetString("start_date", ""),
		EndDate:   req.GetString("end_date", ""),
		Merchant:  req.GetString("merchant", ""),
	}
	if err := filter.Validate(); err != nil {
		return toolError(err)
	}

	store, err := s.store(req.GetString("store_id", ""))
	if err != nil {
		return toolError(err)
	}

	txns, err := store.Recent(ctx, queryWindow)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(budget.Query(txns, filter))
}

func (s *Server) handleGetSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := budget.Filter{
		StartDate: req.GetString("start_date", ""),
		EndDate:   req.GetString("end_date", ""),
	}
	if err := filter.Validate(); err != nil {
		return toolError(err)
	}

	store, err := s.store(req.GetString("store_id", ""))
	if err != nil {
		return toolError(err)
	}

	txns, err := store.Recent(ctx, queryWindow)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(budget.Summarize(budget.Query(txns, filter)))
}
