package retail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmazon(t *testing.T) {
	items := ParseAmazon(readFixture(t, "amazon_items.csv"))

	// 5 rows, one exact duplicate collapsed.
	require.Len(t, items, 4)

	byName := make(map[string]int)
	for i, item := range items {
		byName[item.Name] = i
	}

	cable := items[byName["USB C Charging Cable 6ft"]]
	assert.Equal(t, "Shopping", cable.LedgerCategory)
	assert.Equal(t, "Electronics", cable.Subcategory)
	assert.Equal(t, "ELECTRONICS", cable.RetailCategory)
	assert.Equal(t, "111-0000001", cable.OrderID)
	assert.Equal(t, "8.99", cable.Total.StringFixed(2))

	book := items[byName["The Pragmatic Handbook"]]
	assert.Equal(t, "Entertainment", book.LedgerCategory)
	assert.Equal(t, "Books", book.Subcategory)

	// Fully refunded: the refund exceeds the pre-tax subtotal.
	blanket := items[byName["Fleece Throw Blanket 50x60"]]
	assert.True(t, blanket.IsReturn)
	assert.Equal(t, "21.59", blanket.Refunded.StringFixed(2))
	assert.True(t, blanket.NetTotal.IsNegative())

	// No category code: title keywords take over.
	trailMix := items[byName["Organic Trail Mix Snack Pack"]]
	assert.Equal(t, "Food", trailMix.LedgerCategory)
	assert.Equal(t, "Grocery", trailMix.Subcategory)
	assert.Equal(t, 2, trailMix.Qty)
	assert.Equal(t, "25.00", trailMix.Total.StringFixed(2))
}

func TestParseAmazon_OldFormat(t *testing.T) {
	csv := "Order ID,Order Date,Title,Category,Seller,Quantity,Purchase Price Per Unit,Shipping Charge,Total Charged,Tracking Number\n" +
		"112-0000009,03/02/2023,Yoga Mat Extra Thick,SPORTS,SomeSeller,1,$21.99,$0.00,$23.75,TBA123\n"
	items := ParseAmazon(csv)
	require.Len(t, items, 1)
	assert.Equal(t, "Healthcare", items[0].LedgerCategory)
	assert.Equal(t, "Sports & Fitness", items[0].Subcategory)
	assert.Equal(t, "23.75", items[0].Total.StringFixed(2))
	assert.False(t, items[0].IsReturn)
}

func TestParseAmazon_SkipsRepeatedHeaderRows(t *testing.T) {
	csv := "Order Date,Order ID,Title,Category,Quantity,Purchase Price Per Unit,Total Charged\n" +
		"01/01/2024,111-1,Widget Cable,ELECTRONICS,1,$5.00,$5.40\n" +
		"Order Date,Order ID,Title,Category,Quantity,Purchase Price Per Unit,Total Charged\n" +
		"01/02/2024,111-2,Gadget Charger,ELECTRONICS,1,$7.00,$7.56\n"
	items := ParseAmazon(csv)
	require.Len(t, items, 2)
}

func TestParseAmazon_TotalFallsBackToUnitPrice(t *testing.T) {
	csv := "Order Date,Order ID,Title,Category,Quantity,Purchase Price Per Unit,Total Charged\n" +
		"01/01/2024,111-1,Phone Case Slim,ELECTRONICS,3,$4.00,\n"
	items := ParseAmazon(csv)
	require.Len(t, items, 1)
	assert.Equal(t, "12.00", items[0].Total.StringFixed(2))
}

func TestCategorizeAmazon(t *testing.T) {
	cat, sub := categorizeAmazon("anything", "ABIS_BOOK")
	assert.Equal(t, "Entertainment", cat)
	assert.Equal(t, "Books", sub)

	// Unmapped code falls through to title keywords.
	cat, sub = categorizeAmazon("Resistance Band Set", "MYSTERY_CODE")
	assert.Equal(t, "Shopping", cat)
	assert.Equal(t, "Sports & Fitness", sub)

	cat, sub = categorizeAmazon("Inscrutable Gizmo", "")
	assert.Equal(t, "Shopping", cat)
	assert.Equal(t, "Other Amazon", sub)
}

func TestSummarizeAmazon(t *testing.T) {
	items := ParseAmazon(readFixture(t, "amazon_items.csv"))
	s := SummarizeAmazon(items)

	// Fully refunded blanket moves to returns and out of spend.
	assert.Equal(t, "58.98", s.TotalSpend.StringFixed(2))
	assert.Equal(t, "21.59", s.TotalReturns.StringFixed(2))
	assert.Equal(t, "37.39", s.NetSpend.StringFixed(2))
	assert.Len(t, s.ActiveItems, 3)
	require.Len(t, s.ReturnItems, 1)
	assert.Equal(t, "Fleece Throw Blanket 50x60", s.ReturnItems[0].Name)

	subs := s.Subcategories()
	require.Len(t, subs, 3)
	assert.Equal(t, "Grocery", subs[0].Subcategory)
	assert.Equal(t, "Books", subs[1].Subcategory)
	assert.Equal(t, "Electronics", subs[2].Subcategory)
}
