package budget

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budgetlens-dev/budgetlens/internal/model"
)

// Summarize aggregates a transaction window in a single pass. Positive
// amounts accumulate into TotalSpent, negative into TotalIncome (as an
// absolute value); a zero amount contributes to neither total but still
// appears in its category bucket.
func Summarize(txns []model.Transaction) model.SpendingSummary {
	summary := model.SpendingSummary{
		ByCategory:       make(map[model.Category]decimal.Decimal),
		TransactionCount: len(txns),
	}

	for _, t := range txns {
		summary.ByCategory[t.Category] = summary.ByCategory[t.Category].Add(t.Amount)

		if t.Amount.IsPositive() {
			summary.TotalSpent = summary.TotalSpent.Add(t.Amount)
		} else {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount.Abs())
		}
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalSpent)
	return summary
}

// MonthlyTotal is the summed amount for one calendar year-month.
type MonthlyTotal struct {
	Month string
	Total decimal.Decimal
}

// MonthlyTotals groups transactions by the YYYY-MM prefix of their date
// string and sums amounts per group, sorted by month. This relies on the
// fixed date formatting, not calendar arithmetic.
func MonthlyTotals(txns []model.Transaction) []MonthlyTotal {
	byMonth := make(map[string]decimal.Decimal)
	for _, t := range txns {
		month := t.Date
		if len(month) > 7 {
			month = month[:7]
		}
		byMonth[month] = byMonth[month].Add(t.Amount)
	}

	totals := make([]MonthlyTotal, 0, len(byMonth))
	for month, total := range byMonth {
		totals = append(totals, MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })

	return totals
}
