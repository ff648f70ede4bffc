package dashboard

import (
	"testing"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockStatus(t *testing.T) {
	tests := []struct {
		stock int
		want  string
	}{
		{0, StockStatusOut},
		{1, StockStatusLow},
		{10, StockStatusLow},
		{11, StockStatusActive},
		{500, StockStatusActive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StockStatus(tt.stock), "stock=%d", tt.stock)
	}
}

func TestGroupByCategory(t *testing.T) {
	products := []records.Product{
		{ID: "p1", CategoryName: "Shoes"},
		{ID: "p2", CategoryName: "Hats"},
		{ID: "p3", CategoryName: "Shoes"},
		{ID: "p4"}, // unresolved category
		{ID: "p5", CategoryName: "Hats"},
	}

	g := GroupByCategory(products)

	require.Equal(t, []string{"Shoes", "Hats", UncategorizedLabel}, g.Labels(),
		"labels keep first-seen order")
	assert.Len(t, g.Products("Shoes"), 2)
	assert.Len(t, g.Products("Hats"), 2)
	assert.Len(t, g.Products(UncategorizedLabel), 1)
	assert.Equal(t, "p4", g.Products(UncategorizedLabel)[0].ID)

	// partition: every product lands in exactly one group
	total := 0
	for _, label := range g.Labels() {
		total += len(g.Products(label))
	}
	assert.Equal(t, len(products), total)
}

func TestGroupByCategory_Empty(t *testing.T) {
	g := GroupByCategory(nil)
	assert.Empty(t, g.Labels())
	assert.Nil(t, g.Products("anything"))
}
