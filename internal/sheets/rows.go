package sheets

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetlens-dev/budgetlens/internal/model"
)

// Column positions in the Transactions sheet. The layout is fixed; readers
// and writers must agree on these positions.
const (
	colDate = iota
	colMerchant
	colAmount
	colCategory
	colType
	colBank
	colAccount
	colNotes
	numCols
)

// minCols is the fewest populated columns a row may have and still decode.
// Shorter rows are treated as garbage and dropped.
const minCols = 5

func headerRow() []any {
	return []any{"Date", "Merchant", "Amount", "Category", "Type", "Bank", "Account", "Notes"}
}

// encodeRow lays a transaction out in column order. The amount is written
// as a number so the sheet can sum it; the original free-text description
// lands in Notes.
func encodeRow(t model.Transaction, info model.AccountInfo) []any {
	return []any{
		t.Date,
		t.Merchant,
		t.Amount.InexactFloat64(),
		string(t.Category),
		string(t.Type),
		info.Bank,
		info.AccountNumber,
		t.Description,
	}
}

// decodeRow converts a raw sheet row back into a transaction. Missing
// trailing columns default to empty strings; an empty or unparseable amount
// cell decodes as zero. Rows with fewer than minCols populated columns are
// rejected.
func decodeRow(row []any) (model.Transaction, bool) {
	if len(row) < minCols {
		return model.Transaction{}, false
	}

	return model.Transaction{
		Date:     cellString(row, colDate),
		Merchant: cellString(row, colMerchant),
		Amount:   cellAmount(row, colAmount),
		Category: model.Category(cellString(row, colCategory)),
		Type:     model.TransactionType(cellString(row, colType)),
		Bank:     cellString(row, colBank),
		Account:  cellString(row, colAccount),
		Notes:    cellString(row, colNotes),
	}, true
}

func cellString(row []any, col int) string {
	if col >= len(row) || row[col] == nil {
		return ""
	}
	if s, ok := row[col].(string); ok {
		return s
	}
	return fmt.Sprint(row[col])
}

func cellAmount(row []any, col int) decimal.Decimal {
	s := cellString(row, col)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
