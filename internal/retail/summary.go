package retail

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

// SubcategoryTotal aggregates active items under one subcategory.
type SubcategoryTotal struct {
	LedgerCategory string
	Subcategory    string
	Total          decimal.Decimal
	Count          int // units purchased, not line items
	Items          []model.OrderItem
}

// Summary is the aggregate view of one retailer's parsed items.
type Summary struct {
	ByCategory   map[string]SubcategoryTotal // keyed by subcategory
	TotalSpend   decimal.Decimal
	TotalReturns decimal.Decimal // Walmart: returned totals; Amazon: refunds
	NetSpend     decimal.Decimal
	ActiveItems  []model.OrderItem
	ReturnItems  []model.OrderItem
}

// SummarizeWalmart partitions items into active and returns and totals
// active spend by subcategory.
func SummarizeWalmart(items []model.OrderItem) Summary {
	s := Summary{
		ByCategory:   make(map[string]SubcategoryTotal),
		TotalSpend:   decimal.Zero,
		TotalReturns: decimal.Zero,
	}
	for _, item := range items {
		if item.IsActive {
			s.ActiveItems = append(s.ActiveItems, item)
			s.TotalSpend = s.TotalSpend.Add(item.Total)
			addToBucket(s.ByCategory, item, item.Total)
		}
		if item.IsReturn {
			s.ReturnItems = append(s.ReturnItems, item)
			s.TotalReturns = s.TotalReturns.Add(item.Total)
		}
	}
	s.NetSpend = s.TotalSpend.Sub(s.TotalReturns)
	return s
}

// SummarizeAmazon totals spend by subcategory using the post-refund amount
// where one exists. Refunds count against net spend even for items that
// remain partially active.
func SummarizeAmazon(items []model.OrderItem) Summary {
	s := Summary{
		ByCategory:   make(map[string]SubcategoryTotal),
		TotalSpend:   decimal.Zero,
		TotalReturns: decimal.Zero,
	}
	for _, item := range items {
		s.TotalReturns = s.TotalReturns.Add(item.Refunded)
		if item.IsReturn && !item.NetTotal.IsPositive() {
			s.ReturnItems = append(s.ReturnItems, item)
			continue
		}
		s.ActiveItems = append(s.ActiveItems, item)
		s.TotalSpend = s.TotalSpend.Add(item.Total)

		amount := item.Total
		if item.NetTotal.IsPositive() {
			amount = item.NetTotal
		}
		addToBucket(s.ByCategory, item, amount)

		if item.IsReturn {
			s.ReturnItems = append(s.ReturnItems, item)
		}
	}
	s.NetSpend = s.TotalSpend.Sub(s.TotalReturns)
	return s
}

// Subcategories returns the summary buckets sorted by descending total.
func (s Summary) Subcategories() []SubcategoryTotal {
	out := make([]SubcategoryTotal, 0, len(s.ByCategory))
	for _, b := range s.ByCategory {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Subcategory < out[j].Subcategory
	})
	return out
}

func addToBucket(buckets map[string]SubcategoryTotal, item model.OrderItem, amount decimal.Decimal) {
	b, ok := buckets[item.Subcategory]
	if !ok {
		b = SubcategoryTotal{
			LedgerCategory: item.LedgerCategory,
			Subcategory:    item.Subcategory,
			Total:          decimal.Zero,
		}
	}
	b.Total = b.Total.Add(amount)
	b.Count += item.Qty
	b.Items = append(b.Items, item)
	buckets[item.Subcategory] = b
}
