package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetlens-dev/budgetlens/internal/model"
)

const categorizeTemplate = `Categorize this transaction into ONE of these categories:
%s

Transaction: %s
Amount: $%s

Respond with ONLY the category name, nothing else.
`

// Categorize classifies a single transaction description. The response is
// trimmed to its first line and normalized against the category
// enumeration; anything the model invents outside the list becomes Other.
func (c *Client) Categorize(ctx context.Context, description string, amount decimal.Decimal) (model.Category, error) {
	var list strings.Builder
	for _, cat := range model.Categories() {
		fmt.Fprintf(&list, "- %s\n", cat)
	}

	prompt := fmt.Sprintf(categorizeTemplate, strings.TrimRight(list.String(), "\n"), description, amount.StringFixed(2))

	text, err := c.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("categorize %q: %w", description, err)
	}

	line := strings.TrimSpace(text)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}

	category := model.CanonicalCategory(line)
	c.logger.Debug("categorized transaction", "description", description, "category", category)

	return category, nil
}
