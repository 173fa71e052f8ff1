// Package budget provides the pure in-memory filtering and aggregation
// performed over transactions read back from the store.
package budget

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/budgetlens-dev/budgetlens/internal/common"
	"github.com/budgetlens-dev/budgetlens/internal/model"
)

// isoDate matches zero-padded YYYY-MM-DD. The zero padding is what makes
// lexicographic range comparison on date strings valid, so it is enforced
// at the boundary rather than assumed.
var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Filter describes the optional predicates applied to a transaction
// window. Empty fields skip their predicate; populated fields compose as a
// logical AND.
type Filter struct {
	Category  string
	StartDate string
	EndDate   string
	Merchant  string
}

// Validate rejects malformed date bounds before any filtering happens.
func (f Filter) Validate() error {
	if f.StartDate != "" && !isoDate.MatchString(f.StartDate) {
		return fmt.Errorf("%w: start_date %q is not YYYY-MM-DD", common.ErrValidation, f.StartDate)
	}
	if f.EndDate != "" && !isoDate.MatchString(f.EndDate) {
		return fmt.Errorf("%w: end_date %q is not YYYY-MM-DD", common.ErrValidation, f.EndDate)
	}
	return nil
}

// Query filters txns in place order: case-insensitive exact match on
// category, inclusive string comparison on the ISO date bounds, and
// case-insensitive substring match on merchant. The result is always a
// subset of txns in the original order.
func Query(txns []model.Transaction, f Filter) []model.Transaction {
	category := strings.ToLower(f.Category)
	merchant := strings.ToLower(f.Merchant)

	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if category != "" && strings.ToLower(string(t.Category)) != category {
			continue
		}
		if f.StartDate != "" && t.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && t.Date > f.EndDate {
			continue
		}
		if merchant != "" && !strings.Contains(strings.ToLower(t.Merchant), merchant) {
			continue
		}
		out = append(out, t)
	}
	return out
}
