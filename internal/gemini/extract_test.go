package gemini

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetlens-dev/budgetlens/internal/common"
	"github.com/budgetlens-dev/budgetlens/internal/model"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "no fence", input: `{"a":1}`, want: `{"a":1}`},
		{name: "surrounding whitespace", input: "  \n```json\n{}\n```  ", want: "{}"},
		{name: "fence without newline", input: "```json{}```", want: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.input))
		})
	}
}

const validStatement = `{
	"account_info": {
		"bank": "Chase",
		"account_number": "1234",
		"statement_period_start": "2025-03-01",
		"statement_period_end": "2025-03-31",
		"beginning_balance": 1000.00,
		"ending_balance": 850.00
	},
	"transactions": [
		{"date": "2025-03-01", "merchant": "Amazon", "amount": 25.00, "category": "Shopping", "type": "debit", "description": "AMZN.COM/BILL"},
		{"date": "2025-03-02", "merchant": "Employer", "amount": -2000.00, "category": "Income", "type": "credit", "description": ""}
	]
}`

func TestDecodeStatement(t *testing.T) {
	data, err := decodeStatement(validStatement)
	require.NoError(t, err)

	assert.Equal(t, "Chase", data.AccountInfo.Bank)
	assert.Equal(t, "1234", data.AccountInfo.AccountNumber)
	assert.True(t, data.AccountInfo.BeginningBalance.Equal(decimal.NewFromInt(1000)))

	require.Len(t, data.Transactions, 2)
	assert.Equal(t, model.CategoryShopping, data.Transactions[0].Category)
	assert.Equal(t, model.TypeDebit, data.Transactions[0].Type)
	assert.Equal(t, model.TypeCredit, data.Transactions[1].Type)
}

func TestDecodeStatementFencedEqualsBare(t *testing.T) {
	fenced := "```json\n" + validStatement + "\n```"

	fromFenced, err := decodeStatement(fenced)
	require.NoError(t, err)
	fromBare, err := decodeStatement(validStatement)
	require.NoError(t, err)

	assert.Equal(t, fromBare, fromFenced)
}

func TestDecodeStatementNormalizesSign(t *testing.T) {
	// The type field wins over whatever sign the model emitted.
	input := `{
		"account_info": {"bank": "Chase", "account_number": "1234", "statement_period_start": "2025-03-01", "statement_period_end": "2025-03-31", "beginning_balance": 0, "ending_balance": 0},
		"transactions": [
			{"date": "2025-03-01", "merchant": "Amazon", "amount": -25.00, "category": "Shopping", "type": "debit", "description": ""},
			{"date": "2025-03-02", "merchant": "Employer", "amount": 2000.00, "category": "Income", "type": "credit", "description": ""}
		]
	}`

	data, err := decodeStatement(input)
	require.NoError(t, err)

	assert.True(t, data.Transactions[0].Amount.Equal(decimal.NewFromFloat(25.00)), "debit becomes positive")
	assert.True(t, data.Transactions[1].Amount.Equal(decimal.NewFromFloat(-2000.00)), "credit becomes negative")
}

func TestDecodeStatementUnknownCategoryBecomesOther(t *testing.T) {
	input := `{
		"account_info": {"bank": "Chase", "account_number": "1234", "statement_period_start": "2025-03-01", "statement_period_end": "2025-03-31", "beginning_balance": 0, "ending_balance": 0},
		"transactions": [
			{"date": "2025-03-01", "merchant": "Vet", "amount": 90.00, "category": "Pets", "type": "debit", "description": ""}
		]
	}`

	data, err := decodeStatement(input)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryOther, data.Transactions[0].Category)
}

func TestDecodeStatementMalformedJSON(t *testing.T) {
	_, err := decodeStatement("the model apologizes and explains itself at length")

	require.Error(t, err)
	var parseErr *common.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Snippet)
}

func TestDecodeStatementUnknownFieldRejected(t *testing.T) {
	input := strings.Replace(validStatement, `"bank": "Chase",`, `"bank": "Chase", "routing_number": "021000021",`, 1)

	_, err := decodeStatement(input)

	var parseErr *common.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeStatementMissingFields(t *testing.T) {
	tests := []struct {
		name string
		txn  string
	}{
		{name: "missing date", txn: `{"merchant": "Amazon", "amount": 1, "category": "Shopping", "type": "debit", "description": ""}`},
		{name: "missing merchant", txn: `{"date": "2025-03-01", "amount": 1, "category": "Shopping", "type": "debit", "description": ""}`},
		{name: "unknown type", txn: `{"date": "2025-03-01", "merchant": "Amazon", "amount": 1, "category": "Shopping", "type": "wire", "description": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `{"account_info": {"bank": "B", "account_number": "1", "statement_period_start": "2025-03-01", "statement_period_end": "2025-03-31", "beginning_balance": 0, "ending_balance": 0}, "transactions": [` + tt.txn + `]}`

			_, err := decodeStatement(input)

			var parseErr *common.ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseErrorSnippetBounded(t *testing.T) {
	raw := strings.Repeat("x", 2000)

	_, err := decodeStatement(raw)

	var parseErr *common.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.LessOrEqual(t, len(parseErr.Snippet), 500)
}
