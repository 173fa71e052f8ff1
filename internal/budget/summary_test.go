package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetlens-dev/budgetlens/internal/model"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.TotalSpent.IsZero())
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.Net.IsZero())
	assert.Empty(t, summary.ByCategory)
	assert.Zero(t, summary.TransactionCount)
}

func TestSummarizeStatementScenario(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2025-03-01", Merchant: "Amazon", Amount: decimal.NewFromFloat(25.00), Category: model.CategoryShopping, Type: model.TypeDebit},
		{Date: "2025-03-02", Merchant: "Employer", Amount: decimal.NewFromFloat(-2000.00), Category: model.CategoryIncome, Type: model.TypeCredit},
	}

	summary := Summarize(txns)

	assert.True(t, summary.TotalSpent.Equal(decimal.NewFromFloat(25.00)), "total_spent = %s", summary.TotalSpent)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromFloat(2000.00)), "total_income = %s", summary.TotalIncome)
	assert.True(t, summary.Net.Equal(decimal.NewFromFloat(1975.00)), "net = %s", summary.Net)
	assert.Equal(t, 2, summary.TransactionCount)

	require.Len(t, summary.ByCategory, 2)
	assert.True(t, summary.ByCategory[model.CategoryShopping].Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, summary.ByCategory[model.CategoryIncome].Equal(decimal.NewFromFloat(-2000.00)))
}

func TestSummarizeNetIdentity(t *testing.T) {
	txns := sampleTransactions()
	txns = append(txns, model.Transaction{
		Date: "2025-02-03", Merchant: "Employer", Amount: decimal.NewFromFloat(-3210.45),
		Category: model.CategoryIncome, Type: model.TypeCredit,
	})

	summary := Summarize(txns)

	assert.True(t, summary.Net.Equal(summary.TotalIncome.Sub(summary.TotalSpent)))
}

func TestSummarizeZeroAmount(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2025-01-01", Merchant: "Bank", Amount: decimal.Zero, Category: model.CategoryFees, Type: model.TypeDebit},
	}

	summary := Summarize(txns)

	// A zero amount contributes to neither total but still lands in its
	// category bucket.
	assert.True(t, summary.TotalSpent.IsZero())
	assert.True(t, summary.TotalIncome.IsZero())
	require.Contains(t, summary.ByCategory, model.CategoryFees)
	assert.True(t, summary.ByCategory[model.CategoryFees].IsZero())
	assert.Equal(t, 1, summary.TransactionCount)
}

func TestMonthlyTotals(t *testing.T) {
	txns := []model.Transaction{
		txn("2025-01-05", "Amazon", 10.00, model.CategoryShopping),
		txn("2025-01-20", "Amazon", 15.00, model.CategoryShopping),
		txn("2025-02-01", "Amazon", 7.50, model.CategoryShopping),
		txn("2024-12-31", "Amazon", 1.00, model.CategoryShopping),
	}

	totals := MonthlyTotals(txns)

	require.Len(t, totals, 3)
	assert.Equal(t, "2024-12", totals[0].Month)
	assert.Equal(t, "2025-01", totals[1].Month)
	assert.Equal(t, "2025-02", totals[2].Month)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromFloat(25.00)))
}
