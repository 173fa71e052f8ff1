package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetlens-dev/budgetlens/internal/common"
	"github.com/budgetlens-dev/budgetlens/internal/model"
)

func txn(date, merchant string, amount float64, category model.Category) model.Transaction {
	return model.Transaction{
		Date:     date,
		Merchant: merchant,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Type:     model.TypeDebit,
	}
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		txn("2024-12-31", "Trader Joe's", 54.12, model.CategoryFoodDining),
		txn("2025-01-02", "Amazon", 25.00, model.CategoryShopping),
		txn("2025-01-15", "Shell Oil", 40.10, model.CategoryTransportation),
		txn("2025-01-31", "AMC Theatres", 18.50, model.CategoryEntertainment),
		txn("2025-02-01", "Amazon Fresh", 62.30, model.CategoryFoodDining),
	}
}

func TestQueryCategoryCaseInsensitive(t *testing.T) {
	txns := sampleTransactions()

	got := Query(txns, Filter{Category: "food/dining"})

	require.Len(t, got, 2)
	for _, tx := range got {
		assert.Equal(t, model.CategoryFoodDining, tx.Category)
	}
}

func TestQueryReturnsOrderedSubset(t *testing.T) {
	txns := sampleTransactions()

	got := Query(txns, Filter{Merchant: "amazon"})

	require.Len(t, got, 2)
	assert.Equal(t, "Amazon", got[0].Merchant)
	assert.Equal(t, "Amazon Fresh", got[1].Merchant)
}

func TestQueryDateRangeInclusive(t *testing.T) {
	txns := sampleTransactions()

	got := Query(txns, Filter{StartDate: "2025-01-01", EndDate: "2025-01-31"})

	require.Len(t, got, 3)
	dates := []string{got[0].Date, got[1].Date, got[2].Date}
	assert.Contains(t, dates, "2025-01-15")
	assert.NotContains(t, dates, "2024-12-31")
	assert.NotContains(t, dates, "2025-02-01")
}

func TestQueryIdempotent(t *testing.T) {
	txns := sampleTransactions()
	f := Filter{StartDate: "2025-01-01"}

	once := Query(txns, f)
	twice := Query(once, f)

	assert.Equal(t, once, twice)
}

func TestQueryFiltersComposeAsAnd(t *testing.T) {
	txns := sampleTransactions()

	got := Query(txns, Filter{
		Category:  "Food/Dining",
		StartDate: "2025-01-01",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Amazon Fresh", got[0].Merchant)
}

func TestQueryEmptyFilterReturnsAll(t *testing.T) {
	txns := sampleTransactions()
	assert.Equal(t, txns, Query(txns, Filter{}))
}

func TestFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{name: "empty filter", filter: Filter{}, wantErr: false},
		{name: "valid bounds", filter: Filter{StartDate: "2025-01-01", EndDate: "2025-12-31"}, wantErr: false},
		{name: "unpadded month", filter: Filter{StartDate: "2025-1-01"}, wantErr: true},
		{name: "american order", filter: Filter{EndDate: "01-01-2025"}, wantErr: true},
		{name: "natural language", filter: Filter{StartDate: "yesterday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
