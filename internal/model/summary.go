package model

import "github.com/shopspring/decimal"

// SpendingSummary is a derived aggregate over a transaction window. It is
// recomputed on every query and never persisted.
type SpendingSummary struct {
	TotalSpent       decimal.Decimal              `json:"total_spent"`
	TotalIncome      decimal.Decimal              `json:"total_income"`
	Net              decimal.Decimal              `json:"net"`
	ByCategory       map[Category]decimal.Decimal `json:"by_category"`
	TransactionCount int                          `json:"transaction_count"`
}
