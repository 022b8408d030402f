package model

import "github.com/shopspring/decimal"

// OrderItem is one line of a retailer (Walmart/Amazon) order export.
// Independent of Transaction; connected only by description matching
// during reconciliation.
type OrderItem struct {
	Name           string
	Qty            int
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
	Refunded       decimal.Decimal
	NetTotal       decimal.Decimal
	Status         string
	OrderID        string
	DateRaw        string // order date as exported, not normalized
	RetailCategory string // retailer-supplied category code (Amazon only)
	LedgerCategory string // mapped budget category ID
	Subcategory    string
	IsReturn       bool
	IsActive       bool
}
