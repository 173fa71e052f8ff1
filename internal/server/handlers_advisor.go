package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"

	"github.com/budgetlens-dev/budgetlens/internal/advisor"
	"github.com/budgetlens-dev/budgetlens/internal/budget"
)

func (s *Server) handleGetAdvice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	advice, err := s.advisor.Advice(ctx, store, filter)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(advice), nil
}

func (s *Server) handleFindSavings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store, err := s.store(req.GetString("store_id", ""))
	if err != nil {
		return toolError(err)
	}

	opportunities, err := s.advisor.Savings(ctx, store)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(opportunities), nil
}

func (s *Server) handleAnalyzeTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store, err := s.store(req.GetString("store_id", ""))
	if err != nil {
		return toolError(err)
	}

	analysis, err := s.advisor.Trends(ctx, store, req.GetString("category", ""))
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(analysis), nil
}

func (s *Server) handleCompareBudget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Targets map[string]decimal.Decimal `json:"targets"`
		StoreID string                     `json:"store_id"`
	}
	if err := req.BindArguments(&args); err != nil {
		return toolError(err)
	}
	if len(args.Targets) == 0 {
		return mcp.NewToolResultError("targets must name at least one category"), nil
	}

	store, err := s.store(args.StoreID)
	if err != nil {
		return toolError(err)
	}

	txns, err := store.Recent(ctx, queryWindow)
	if err != nil {
		return toolError(err)
	}

	report := advisor.CompareBudget(args.Targets, budget.Summarize(txns))
	return mcp.NewToolResultText(report), nil
}
