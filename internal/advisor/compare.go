package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetlens-dev/budgetlens/internal/model"
)

// CompareBudget renders per-category actual spending against the caller's
// targets. Purely local formatting; no model call.
func CompareBudget(targets map[string]decimal.Decimal, summary model.SpendingSummary) string {
	var report strings.Builder
	report.WriteString("## Budget vs Actual Spending\n\n")

	for _, name := range sortedTargetNames(targets) {
		target := targets[name]
		actual := summary.ByCategory[model.CanonicalCategory(name)]
		difference := actual.Sub(target)

		percentage := decimal.Zero
		if target.IsPositive() {
			percentage = actual.Div(target).Mul(decimal.NewFromInt(100))
		}

		status := "UNDER"
		if difference.IsPositive() {
			status = "OVER"
		}

		fmt.Fprintf(&report, "[%s] **%s**\n", status, name)
		fmt.Fprintf(&report, "  - Target: $%s\n", target.StringFixed(2))
		fmt.Fprintf(&report, "  - Actual: $%s\n", actual.StringFixed(2))
		fmt.Fprintf(&report, "  - Difference: $%s (%s%%)\n\n", difference.StringFixed(2), percentage.StringFixed(1))
	}

	return report.String()
}

func sortedTargetNames(targets map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
