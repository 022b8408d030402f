package retail

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestParseWalmart(t *testing.T) {
	items := ParseWalmart(readFixture(t, "walmart_orders.csv"))

	// 7 rows, one exact duplicate collapsed.
	require.Len(t, items, 6)

	byName := make(map[string]int)
	for i, item := range items {
		byName[item.Name] = i
	}

	bananas := items[byName["Marketside Fresh Organic Bananas"]]
	assert.Equal(t, "Food", bananas.LedgerCategory)
	assert.Equal(t, "Grocery", bananas.Subcategory)
	assert.Equal(t, 2, bananas.Qty)
	assert.Equal(t, "1.16", bananas.Total.StringFixed(2))
	assert.True(t, bananas.IsActive)

	gas := items[byName["Great Value Unleaded Gasoline"]]
	assert.Equal(t, "Transport", gas.LedgerCategory)
	assert.Equal(t, "Fuel", gas.Subcategory)

	// Appliance keywords outrank the grocery catchall.
	fryer := items[byName["Ninja Air Fryer 4qt"]]
	assert.Equal(t, "Shopping", fryer.LedgerCategory)
	assert.Equal(t, "Appliances", fryer.Subcategory)

	returned := items[byName["Girls Winnie the Pooh Shirt"]]
	assert.True(t, returned.IsReturn)
	assert.False(t, returned.IsActive)

	canceled := items[byName["Mystery Widget"]]
	assert.False(t, canceled.IsActive)
	assert.False(t, canceled.IsReturn)
}

func TestParseWalmart_MissingRequiredColumns(t *testing.T) {
	assert.Nil(t, ParseWalmart("Quantity,Delivery Status\n1,Shopped\n"))
	assert.Nil(t, ParseWalmart(""))
	assert.Nil(t, ParseWalmart("Product Name,Price\n"))
}

func TestParseWalmart_SkipsUnpricedRows(t *testing.T) {
	csv := "Product Name,Quantity,Price,Delivery Status\n" +
		"Free Sample,1,0.00,Shopped\n" +
		"No Name Row,1,,Shopped\n" +
		"Real Item Snack,1,3.50,Shopped\n"
	items := ParseWalmart(csv)
	require.Len(t, items, 1)
	assert.Equal(t, "Real Item Snack", items[0].Name)
}

func TestParseWalmart_UncategorizedFallsToMisc(t *testing.T) {
	csv := "Product Name,Quantity,Price,Delivery Status\nZzgrblx Device,1,5.00,Shopped\n"
	items := ParseWalmart(csv)
	require.Len(t, items, 1)
	assert.Equal(t, "Other", items[0].LedgerCategory)
	assert.Equal(t, "Misc", items[0].Subcategory)
}

func TestSummarizeWalmart(t *testing.T) {
	items := ParseWalmart(readFixture(t, "walmart_orders.csv"))
	s := SummarizeWalmart(items)

	// Active: bananas + gas + fryer + paper towel. Returned shirt and
	// canceled widget stay out of spend.
	assert.Equal(t, "150.33", s.TotalSpend.StringFixed(2))
	assert.Equal(t, "12.98", s.TotalReturns.StringFixed(2))
	assert.Equal(t, "137.35", s.NetSpend.StringFixed(2))
	assert.Len(t, s.ReturnItems, 1)

	grocery := s.ByCategory["Grocery"]
	assert.Equal(t, "Food", grocery.LedgerCategory)
	assert.Equal(t, 2, grocery.Count)
	assert.Equal(t, "1.16", grocery.Total.StringFixed(2))

	// Sorted by descending total.
	subs := s.Subcategories()
	require.NotEmpty(t, subs)
	assert.Equal(t, "Appliances", subs[0].Subcategory)
}
