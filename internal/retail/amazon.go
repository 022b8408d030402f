package retail

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit-dev/ledgerkit/internal/bankcsv"
	"github.com/ledgerkit-dev/ledgerkit/internal/model"
	"github.com/ledgerkit-dev/ledgerkit/internal/money"
)

// ParseAmazon parses an Amazon order history items report. Two export
// generations are supported:
//
//	new: Order Date,Order ID,Title,Category,ASIN/ISBN,Quantity,
//	     Purchase Price Per Unit,...,Total Charged,Total Refunded
//	old: Order ID,Order Date,Title,Category,Seller,Quantity,
//	     Purchase Price Per Unit,Shipping Charge,Total Charged,Tracking Number
//
// Amazon supplies its own coarse category codes, consulted before title
// keywords. Duplicates collapse on orderId + title prefix + total.
func ParseAmazon(text string) []model.OrderItem {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil
	}

	headers := lowerHeader(bankcsv.SplitLine(lines[0]))
	titleIdx := findHeaderExactOr(headers, "title", "product name", "item name")
	categoryIdx := findHeader(headers, "category")
	qtyIdx := findHeaderExactOr(headers, "quantity", "qty")
	priceIdx := findHeader(headers, "unit price", "price per unit")
	totalIdx := findHeader(headers, "total charged", "subtotal")
	// Exact name first: the new format also has a "shipping charge refund"
	// column that a bare substring search would land on.
	refundIdx := findHeaderExactOr(headers, "total refunded", "refund")
	dateIdx := findHeader(headers, "order date")
	orderIDIdx := findHeader(headers, "order id")

	if titleIdx < 0 {
		return nil
	}

	var items []model.OrderItem
	seen := make(map[string]bool)

	for _, line := range lines[1:] {
		cols := bankcsv.SplitLine(line)
		if len(cols) < 2 {
			continue
		}

		title := strings.TrimSpace(colAt(cols, titleIdx))
		if title == "" || strings.EqualFold(title, "title") { // repeated header rows
			continue
		}

		category := strings.TrimSpace(colAt(cols, categoryIdx))
		qty := parseQty(colAt(cols, qtyIdx))
		unitPrice := money.ParseAmount(colAt(cols, priceIdx))
		refunded := money.ParseAmount(colAt(cols, refundIdx))

		total := money.ParseAmount(colAt(cols, totalIdx))
		if !total.IsPositive() {
			total = unitPrice.Mul(decimal.NewFromInt(int64(qty)))
		}
		if !total.IsPositive() && !unitPrice.IsPositive() {
			continue
		}

		key := colAt(cols, orderIDIdx) + "|" + prefix(title, 50) + "|" + total.StringFixed(2)
		if seen[key] {
			continue
		}
		seen[key] = true

		netTotal := total.Sub(refunded)
		ledgerCat, sub := categorizeAmazon(title, category)

		items = append(items, model.OrderItem{
			Name:           title,
			Qty:            qty,
			UnitPrice:      unitPrice,
			Total:          total,
			Refunded:       refunded,
			NetTotal:       netTotal,
			OrderID:        strings.TrimSpace(colAt(cols, orderIDIdx)),
			DateRaw:        strings.TrimSpace(colAt(cols, dateIdx)),
			RetailCategory: category,
			LedgerCategory: ledgerCat,
			Subcategory:    sub,
			IsReturn:       refunded.IsPositive(),
			IsActive:       netTotal.IsPositive() || total.IsPositive(),
		})
	}
	return items
}

// categorizeAmazon tries the Amazon category code map first, then title
// keywords, then a retailer-specific catchall.
func categorizeAmazon(title, amazonCategory string) (string, string) {
	if m, ok := amazonCategoryMap[strings.TrimSpace(amazonCategory)]; ok {
		return m.LedgerCategory, m.Subcategory
	}
	if rule, ok := matchItemRules(strings.ToLower(title), amazonTitleRules); ok {
		return rule.LedgerCategory, rule.Subcategory
	}
	return "Shopping", "Other Amazon"
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
