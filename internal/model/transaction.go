package model

import "github.com/shopspring/decimal"

func init() {
	// Amounts serialize as bare JSON numbers, not quoted strings, so tool
	// results read as {"amount": 42.50}.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType distinguishes money leaving the account from money
// entering it.
type TransactionType string

const (
	// TypeDebit marks purchases and other outflows.
	TypeDebit TransactionType = "debit"
	// TypeCredit marks deposits and other inflows.
	TypeCredit TransactionType = "credit"
)

// Transaction represents a single statement line item. Dates are kept as
// zero-padded YYYY-MM-DD strings throughout: that is both the store format
// and what makes lexicographic range filtering valid.
//
// By convention Amount is positive for debits and negative for credits; the
// extraction client normalizes the sign against Type on decode.
type Transaction struct {
	Date        string          `json:"date"`
	Merchant    string          `json:"merchant"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description,omitempty"`

	// Populated when the transaction is read back from the store; empty on
	// freshly extracted transactions.
	Bank    string `json:"bank,omitempty"`
	Account string `json:"account,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// AccountInfo holds the per-statement header data extracted alongside the
// transactions. Immutable once produced.
type AccountInfo struct {
	Bank                 string          `json:"bank"`
	AccountNumber        string          `json:"account_number"`
	StatementPeriodStart string          `json:"statement_period_start"`
	StatementPeriodEnd   string          `json:"statement_period_end"`
	BeginningBalance     decimal.Decimal `json:"beginning_balance"`
	EndingBalance        decimal.Decimal `json:"ending_balance"`
}

// StatementData is the full result of parsing one bank statement.
type StatementData struct {
	AccountInfo  AccountInfo   `json:"account_info"`
	Transactions []Transaction `json:"transactions"`
}
