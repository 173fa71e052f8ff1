package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/budgetlens-dev/budgetlens/internal/common"
	"github.com/budgetlens-dev/budgetlens/internal/model"
	"github.com/budgetlens-dev/budgetlens/internal/pdf"
)

// extractPrompt drives the whole extraction. Accuracy is bounded almost
// entirely by this wording plus page resolution, so change it carefully.
const extractPrompt = `You are a financial data extraction expert. Analyze this bank statement and extract ALL transactions with perfect accuracy.

**INSTRUCTIONS:**
1. Identify the bank name and account number
2. Find the statement period (start and end dates)
3. Extract beginning and ending balance
4. Extract EVERY transaction (do not skip any!)
5. For each transaction, provide:
   - date: In YYYY-MM-DD format
   - merchant: Clean merchant/description name (remove extra codes)
   - amount: Positive number for debits/purchases, negative for deposits/credits
   - category: Auto-categorize as one of:
     * Income (salary, deposits)
     * Rent/Housing
     * Food/Dining (restaurants, groceries)
     * Transportation (gas, car payments, parking)
     * Shopping (retail, online purchases)
     * Entertainment (movies, subscriptions)
     * Travel (flights, hotels)
     * Bills/Utilities
     * Healthcare
     * Education
     * Transfer (between accounts, Zelle, Venmo)
     * Fees (bank fees, interest)
     * Other
   - type: "debit" or "credit"

**OUTPUT FORMAT:**
Return ONLY valid JSON (no markdown, no explanation). Use this exact structure:

{
    "account_info": {
        "bank": "Bank Name",
        "account_number": "last 4 digits",
        "statement_period_start": "YYYY-MM-DD",
        "statement_period_end": "YYYY-MM-DD",
        "beginning_balance": 0.00,
        "ending_balance": 0.00
    },
    "transactions": [
        {
            "date": "YYYY-MM-DD",
            "merchant": "Merchant Name",
            "amount": 0.00,
            "category": "Category",
            "type": "debit",
            "description": "original description if different from merchant"
        }
    ]
}

**CRITICAL RULES:**
- Be precise with amounts (use actual values from statement)
- Maintain chronological order
- Do not invent or skip transactions
- Clean up merchant names (e.g., "AMZN.COM/BILL" -> "Amazon")
- Return ONLY JSON, no other text
`

// Wire types mirror the documented response schema exactly. Decoding is
// strict: an unknown field anywhere is treated the same as malformed JSON.
type statementWire struct {
	AccountInfo  accountInfoWire   `json:"account_info"`
	Transactions []transactionWire `json:"transactions"`
}

type accountInfoWire struct {
	Bank                 string          `json:"bank"`
	AccountNumber        string          `json:"account_number"`
	StatementPeriodStart string          `json:"statement_period_start"`
	StatementPeriodEnd   string          `json:"statement_period_end"`
	BeginningBalance     decimal.Decimal `json:"beginning_balance"`
	EndingBalance        decimal.Decimal `json:"ending_balance"`
}

type transactionWire struct {
	Date        string          `json:"date"`
	Merchant    string          `json:"merchant"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

// ExtractStatement sends the instruction prompt plus every page image in a
// single multimodal request and decodes the model's JSON reply. Decode
// failure is a hard failure: no partial results, no retry.
func (c *Client) ExtractStatement(ctx context.Context, pages []pdf.Page) (*model.StatementData, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: statement has no pages", common.ErrDocument)
	}

	parts := make([]*genai.Part, 0, len(pages)+1)
	parts = append(parts, &genai.Part{Text: extractPrompt})
	for _, p := range pages {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "image/png", Data: p.PNG},
		})
	}

	c.logger.Info("extracting statement", "pages", len(pages), "model", c.model)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{{Role: "user", Parts: parts}}, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, common.NewParseError(fmt.Errorf("empty response from model"), raw)
	}

	data, err := decodeStatement(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Info("extracted statement",
		"bank", data.AccountInfo.Bank,
		"account", data.AccountInfo.AccountNumber,
		"transactions", len(data.Transactions))

	return data, nil
}

// decodeStatement strips markdown fences, decodes strictly, and normalizes
// each transaction. Exposed to tests via the package boundary only.
func decodeStatement(raw string) (*model.StatementData, error) {
	clean := StripFences(raw)

	dec := json.NewDecoder(bytes.NewReader([]byte(clean)))
	dec.DisallowUnknownFields()

	var wire statementWire
	if err := dec.Decode(&wire); err != nil {
		return nil, common.NewParseError(err, clean)
	}

	data := &model.StatementData{
		AccountInfo: model.AccountInfo{
			Bank:                 wire.AccountInfo.Bank,
			AccountNumber:        wire.AccountInfo.AccountNumber,
			StatementPeriodStart: wire.AccountInfo.StatementPeriodStart,
			StatementPeriodEnd:   wire.AccountInfo.StatementPeriodEnd,
			BeginningBalance:     wire.AccountInfo.BeginningBalance,
			EndingBalance:        wire.AccountInfo.EndingBalance,
		},
		Transactions: make([]model.Transaction, 0, len(wire.Transactions)),
	}

	for i, tw := range wire.Transactions {
		txn, err := normalizeTransaction(tw)
		if err != nil {
			return nil, common.NewParseError(fmt.Errorf("transaction %d: %w", i, err), clean)
		}
		data.Transactions = append(data.Transactions, txn)
	}

	return data, nil
}

// normalizeTransaction validates required fields and reconciles the amount
// sign with the debit/credit type. The prompt asks for positive debits and
// negative credits but the model is not always consistent; the type field
// wins.
func normalizeTransaction(tw transactionWire) (model.Transaction, error) {
	if tw.Date == "" {
		return model.Transaction{}, fmt.Errorf("missing date")
	}
	if tw.Merchant == "" {
		return model.Transaction{}, fmt.Errorf("missing merchant")
	}

	var txnType model.TransactionType
	switch strings.ToLower(strings.TrimSpace(tw.Type)) {
	case "debit":
		txnType = model.TypeDebit
	case "credit":
		txnType = model.TypeCredit
	default:
		return model.Transaction{}, fmt.Errorf("unknown type %q", tw.Type)
	}

	amount := tw.Amount.Abs()
	if txnType == model.TypeCredit {
		amount = amount.Neg()
	}

	return model.Transaction{
		Date:        tw.Date,
		Merchant:    tw.Merchant,
		Amount:      amount,
		Category:    model.CanonicalCategory(tw.Category),
		Type:        txnType,
		Description: tw.Description,
	}, nil
}

// StripFences removes a leading ```json (or bare ```) line and a trailing
// ``` marker so the remainder can be fed to the JSON decoder. Text without
// fences passes through unchanged.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
