// Package advisor formats spending data into natural-language prompts and
// relays the model's answers verbatim. There is no local reasoning here
// beyond assembling the prompt.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetlens-dev/budgetlens/internal/budget"
	"github.com/budgetlens-dev/budgetlens/internal/model"
)

// Transaction windows per operation. Advice reasons over a medium window,
// savings scans a wider one, trends the widest.
const (
	adviceWindow  = 200
	savingsWindow = 500
	trendsWindow  = 1000
	summaryWindow = 1000
	recentListing = 20
)

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TransactionReader supplies recent transactions from the store.
type TransactionReader interface {
	Recent(ctx context.Context, limit int) ([]model.Transaction, error)
}

// Advisor packages aggregates and transaction windows into prompts.
type Advisor struct {
	gen    TextGenerator
	logger *slog.Logger
}

// New creates an Advisor over the given generator.
func New(gen TextGenerator, logger *slog.Logger) *Advisor {
	return &Advisor{gen: gen, logger: logger}
}

// Advice analyzes recent spending and returns personalized budget advice.
// The date bounds, when set, restrict the summarized window.
func (a *Advisor) Advice(ctx context.Context, store TransactionReader, f budget.Filter) (string, error) {
	txns, err := store.Recent(ctx, adviceWindow)
	if err != nil {
		return "", err
	}

	window, err := store.Recent(ctx, summaryWindow)
	if err != nil {
		return "", err
	}
	summary := budget.Summarize(budget.Query(window, f))

	// The statement balance isn't tracked, so approximate it from the
	// summarized window.
	balance := summary.Net

	payload, err := json.MarshalIndent(struct {
		CurrentBalance    decimal.Decimal     `json:"current_balance"`
		TotalTransactions int                 `json:"total_transactions"`
		Transactions      []model.Transaction `json:"transactions"`
	}{balance, len(txns), txns}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode advice payload: %w", err)
	}

	prompt := fmt.Sprintf(`You are a financial advisor. Analyze these transactions and provide personalized budget advice.

Transaction data:
%s

Provide advice on:
1. Top spending categories
2. Areas where spending can be reduced
3. Unusual or concerning transactions
4. Budget recommendations
5. Savings opportunities

Be specific, actionable, and encouraging. Format your response in clear sections with bullet points.
`, payload)

	a.logger.Info("generating budget advice", "transactions", len(txns))
	return a.gen.Generate(ctx, prompt)
}

// Savings asks the model for concrete savings opportunities based on the
// summary and the most recent transactions.
func (a *Advisor) Savings(ctx context.Context, store TransactionReader) (string, error) {
	txns, err := store.Recent(ctx, savingsWindow)
	if err != nil {
		return "", err
	}
	summary := budget.Summarize(txns)

	var categories strings.Builder
	for _, cat := range sortedCategories(summary.ByCategory) {
		fmt.Fprintf(&categories, "- %s: $%s\n", cat, summary.ByCategory[cat].StringFixed(2))
	}

	recent := txns
	if len(recent) > recentListing {
		recent = recent[len(recent)-recentListing:]
	}
	var listing strings.Builder
	for _, t := range recent {
		fmt.Fprintf(&listing, "- %s: %s ($%s) - %s\n", t.Date, t.Merchant, t.Amount.StringFixed(2), t.Category)
	}

	prompt := fmt.Sprintf(`You are a financial advisor analyzing transactions to find savings opportunities.

Transaction Summary:
- Total transactions: %d
- Total spent: $%s
- Total income: $%s
- Net: $%s

Spending by category:
%s
Recent transactions (last %d):
%s
Identify specific savings opportunities:
1. Subscriptions that might be unused or unnecessary
2. Categories with excessive spending
3. Recurring charges that could be reduced
4. Duplicate or suspicious charges
5. Alternative cheaper options

Be specific and actionable. Format as a numbered list with dollar amounts where possible.
`,
		len(txns),
		summary.TotalSpent.StringFixed(2),
		summary.TotalIncome.StringFixed(2),
		summary.Net.StringFixed(2),
		categories.String(),
		len(recent),
		listing.String())

	a.logger.Info("identifying savings opportunities", "transactions", len(txns))
	return a.gen.Generate(ctx, prompt)
}

// Trends summarizes month-over-month movement, optionally narrowed to one
// category, and asks the model for insight.
func (a *Advisor) Trends(ctx context.Context, store TransactionReader, category string) (string, error) {
	txns, err := store.Recent(ctx, trendsWindow)
	if err != nil {
		return "", err
	}
	if category != "" {
		txns = budget.Query(txns, budget.Filter{Category: category})
	}

	var monthly strings.Builder
	for _, mt := range budget.MonthlyTotals(txns) {
		fmt.Fprintf(&monthly, "- %s: $%s\n", mt.Month, mt.Total.StringFixed(2))
	}

	scope := category
	if scope == "" {
		scope = "All Categories"
	}

	prompt := fmt.Sprintf(`Analyze these spending trends and provide insights:

Category: %s

Monthly spending:
%s
Provide:
1. Overall trend (increasing/decreasing/stable)
2. Seasonal patterns if any
3. Months with unusual spending
4. Predictions for next month
5. Recommendations

Be concise and actionable.
`, scope, monthly.String())

	a.logger.Info("analyzing spending trends", "category", scope, "transactions", len(txns))
	return a.gen.Generate(ctx, prompt)
}

func sortedCategories(byCategory map[model.Category]decimal.Decimal) []model.Category {
	cats := make([]model.Category, 0, len(byCategory))
	for c := range byCategory {
		cats = append(cats, c)
	}
	// Stable listing order for prompts and tests.
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
