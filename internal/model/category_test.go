package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{name: "exact match", input: "Food/Dining", want: CategoryFoodDining},
		{name: "lowercase", input: "food/dining", want: CategoryFoodDining},
		{name: "mixed case", input: "bIlLs/UtIlItIeS", want: CategoryBillsUtilities},
		{name: "surrounding whitespace", input: "  Shopping  ", want: CategoryShopping},
		{name: "unknown maps to Other", input: "Cryptocurrency", want: CategoryOther},
		{name: "empty maps to Other", input: "", want: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalCategory(tt.input))
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, ValidCategory(string(c)), "every enumerated category is valid")
	}

	assert.True(t, ValidCategory("income"))
	assert.False(t, ValidCategory("Groceries"))
	assert.False(t, ValidCategory(""))
}

func TestCategoriesCount(t *testing.T) {
	// The store and the extraction prompt both assume this fixed set.
	assert.Len(t, Categories(), 13)
}
