package retail

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit-dev/ledgerkit/internal/bankcsv"
	"github.com/ledgerkit-dev/ledgerkit/internal/model"
	"github.com/ledgerkit-dev/ledgerkit/internal/money"
)

// ParseWalmart parses a Walmart order history CSV into categorized items.
// Known column set: Product Name, Quantity, Price, Delivery Status, Product
// Link, located by substring so minor header drift still works. Items with
// no name or non-positive price are skipped; duplicates collapse on
// name+price+status.
func ParseWalmart(text string) []model.OrderItem {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil
	}

	headers := lowerHeader(bankcsv.SplitLine(lines[0]))
	nameIdx := findHeader(headers, "product name", "name")
	qtyIdx := findHeaderExactOr(headers, "qty", "quantity")
	priceIdx := findHeader(headers, "price")
	statusIdx := findHeader(headers, "status", "delivery")

	if nameIdx < 0 || priceIdx < 0 {
		return nil
	}

	var items []model.OrderItem
	seen := make(map[string]bool)

	for _, line := range lines[1:] {
		cols := bankcsv.SplitLine(line)
		if len(cols) < 3 {
			continue
		}

		name := strings.TrimSpace(colAt(cols, nameIdx))
		price := money.ParseAmount(colAt(cols, priceIdx))
		qty := parseQty(colAt(cols, qtyIdx))
		status := strings.TrimSpace(colAt(cols, statusIdx))
		if statusIdx < 0 {
			status = "Shopped"
		}

		if name == "" || !price.IsPositive() {
			continue
		}

		key := name + "|" + price.StringFixed(2) + "|" + status
		if seen[key] {
			continue
		}
		seen[key] = true

		rule, ok := matchItemRules(strings.ToLower(name), walmartRules)
		if !ok {
			rule = ItemRule{LedgerCategory: "Other", Subcategory: "Misc"}
		}

		total := price.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, model.OrderItem{
			Name:           name,
			Qty:            qty,
			UnitPrice:      price,
			Total:          total,
			NetTotal:       total,
			Status:         status,
			LedgerCategory: rule.LedgerCategory,
			Subcategory:    rule.Subcategory,
			IsReturn:       strings.Contains(strings.ToLower(status), "return"),
			IsActive:       walmartActive(status),
		})
	}
	return items
}

// walmartActive reports whether a status string counts toward spend totals.
// Blank and canceled items are excluded entirely; anything mentioning a
// return is tracked separately.
func walmartActive(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "" || s == "canceled" {
		return false
	}
	return !strings.Contains(s, "return")
}

func parseQty(raw string) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || q <= 0 {
		return 1
	}
	return q
}

func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(text), "\n") {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func lowerHeader(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(c, `"`, "")))
	}
	return out
}

// findHeader returns the first header index containing any substring.
func findHeader(headers []string, substrings ...string) int {
	for i, h := range headers {
		for _, sub := range substrings {
			if strings.Contains(h, sub) {
				return i
			}
		}
	}
	return -1
}

// findHeaderExactOr matches an exact header name first, then substrings.
func findHeaderExactOr(headers []string, exact string, substrings ...string) int {
	for i, h := range headers {
		if h == exact {
			return i
		}
	}
	return findHeader(headers, substrings...)
}

func colAt(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i]
}
