package model

import "strings"

// Category is one label from the fixed enumeration used to bucket
// transactions for aggregation and advice.
type Category string

// The fixed category enumeration. The extraction prompt constrains the model
// to these values; everything downstream assumes membership.
const (
	CategoryIncome         Category = "Income"
	CategoryRentHousing    Category = "Rent/Housing"
	CategoryFoodDining     Category = "Food/Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryTravel         Category = "Travel"
	CategoryBillsUtilities Category = "Bills/Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTransfer       Category = "Transfer"
	CategoryFees           Category = "Fees"
	CategoryOther          Category = "Other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryIncome,
		CategoryRentHousing,
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryTravel,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTransfer,
		CategoryFees,
		CategoryOther,
	}
}

// ValidCategory reports whether s names a category, ignoring case.
func ValidCategory(s string) bool {
	_, ok := canonicalCategory(s)
	return ok
}

// CanonicalCategory maps s to the canonical casing of its category.
// Unrecognized strings map to CategoryOther.
func CanonicalCategory(s string) Category {
	if c, ok := canonicalCategory(s); ok {
		return c
	}
	return CategoryOther
}

func canonicalCategory(s string) (Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if strings.ToLower(string(c)) == needle {
			return c, true
		}
	}
	return "", false
}
