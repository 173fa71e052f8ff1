package advisor

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetlens-dev/budgetlens/internal/budget"
	"github.com/budgetlens-dev/budgetlens/internal/model"
)

type fakeGenerator struct {
	response string
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, nil
}

type fakeReader struct {
	txns   []model.Transaction
	limits []int
}

func (f *fakeReader) Recent(_ context.Context, limit int) ([]model.Transaction, error) {
	f.limits = append(f.limits, limit)
	if limit > 0 && len(f.txns) > limit {
		return f.txns[len(f.txns)-limit:], nil
	}
	return f.txns, nil
}

func testTransactions() []model.Transaction {
	return []model.Transaction{
		{Date: "2025-01-05", Merchant: "Netflix", Amount: decimal.NewFromFloat(15.99), Category: model.CategoryEntertainment, Type: model.TypeDebit},
		{Date: "2025-01-15", Merchant: "Employer", Amount: decimal.NewFromFloat(-2500.00), Category: model.CategoryIncome, Type: model.TypeCredit},
		{Date: "2025-02-03", Merchant: "Whole Foods", Amount: decimal.NewFromFloat(82.40), Category: model.CategoryFoodDining, Type: model.TypeDebit},
	}
}

func newTestAdvisor(response string) (*Advisor, *fakeGenerator) {
	gen := &fakeGenerator{response: response}
	return New(gen, slog.Default()), gen
}

func TestAdviceReturnsModelTextVerbatim(t *testing.T) {
	adv, _ := newTestAdvisor("Spend less on streaming.")
	store := &fakeReader{txns: testTransactions()}

	got, err := adv.Advice(context.Background(), store, budget.Filter{})

	require.NoError(t, err)
	assert.Equal(t, "Spend less on streaming.", got)
}

func TestAdvicePromptEmbedsTransactions(t *testing.T) {
	adv, gen := newTestAdvisor("ok")
	store := &fakeReader{txns: testTransactions()}

	_, err := adv.Advice(context.Background(), store, budget.Filter{})
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "financial advisor")
	assert.Contains(t, gen.prompts[0], "Netflix")
	assert.Contains(t, gen.prompts[0], "current_balance")
}

func TestAdviceWindowSizes(t *testing.T) {
	adv, _ := newTestAdvisor("ok")
	store := &fakeReader{txns: testTransactions()}

	_, err := adv.Advice(context.Background(), store, budget.Filter{})
	require.NoError(t, err)

	assert.Equal(t, []int{adviceWindow, summaryWindow}, store.limits)
}

func TestSavingsPromptIncludesSummaryAndRecent(t *testing.T) {
	adv, gen := newTestAdvisor("1. Cancel Netflix")
	store := &fakeReader{txns: testTransactions()}

	got, err := adv.Savings(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, "1. Cancel Netflix", got)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Total spent: $98.39")
	assert.Contains(t, gen.prompts[0], "Total income: $2500.00")
	assert.Contains(t, gen.prompts[0], "- Entertainment: $15.99")
	assert.Contains(t, gen.prompts[0], "2025-02-03: Whole Foods ($82.40) - Food/Dining")
}

func TestTrendsFiltersCategory(t *testing.T) {
	adv, gen := newTestAdvisor("trending flat")
	store := &fakeReader{txns: testTransactions()}

	_, err := adv.Trends(context.Background(), store, "Entertainment")
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Category: Entertainment")
	assert.Contains(t, gen.prompts[0], "- 2025-01: $15.99")
	assert.NotContains(t, gen.prompts[0], "2025-02", "other categories' months are excluded")
}

func TestTrendsAllCategories(t *testing.T) {
	adv, gen := newTestAdvisor("ok")
	store := &fakeReader{txns: testTransactions()}

	_, err := adv.Trends(context.Background(), store, "")
	require.NoError(t, err)

	assert.Contains(t, gen.prompts[0], "Category: All Categories")
	assert.Contains(t, gen.prompts[0], "- 2025-02: $82.40")
}
