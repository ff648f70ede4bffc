package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoes(stocks ...int) []records.Product {
	out := make([]records.Product, 0, len(stocks))
	for i, s := range stocks {
		out = append(out, records.Product{ID: string(rune('a' + i)), CategoryName: "Shoes", StockQuantity: s})
	}
	return out
}

func TestBuildInventoryReport_Shoes(t *testing.T) {
	report := BuildInventoryReport(GroupByCategory(shoes(0, 5, 20)))

	require.Len(t, report.Categories, 1)
	v := report.Categories[0]
	assert.Equal(t, "Shoes", v.Category)
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, 2, v.Available)
	assert.Equal(t, 67, v.Percentage)
	assert.Equal(t, 1, v.LowStock)
	assert.Equal(t, 1, v.OutOfStock)
	assert.Equal(t, 25, v.TotalStock)
	assert.False(t, v.LowConfidence)

	assert.Equal(t, 1, report.LowStockAlerts)
	assert.Equal(t, 1, report.OutOfStockAlerts)
	assert.Equal(t, 2, report.TotalAlerts)
}

func TestBuildInventoryReport_OnlyReferencedCategoriesEmitted(t *testing.T) {
	// No product references "Hats", so no "Hats" row exists at all.
	report := BuildInventoryReport(GroupByCategory(shoes(3)))
	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Shoes", report.Categories[0].Category)
}

func TestBuildInventoryReport_Empty(t *testing.T) {
	report := BuildInventoryReport(GroupByCategory(nil))
	assert.Empty(t, report.Categories)
	assert.Zero(t, report.TotalAlerts)
}

func TestBuildInventoryReport_Invariants(t *testing.T) {
	cases := [][]int{
		{0},
		{1, 10, 11},
		{0, 0, 0, 0},
		{12, 13, 14},
		{0, 5, 20, 10, 11, 0, 7},
	}
	for _, stocks := range cases {
		report := BuildInventoryReport(GroupByCategory(shoes(stocks...)))
		require.Len(t, report.Categories, 1)
		v := report.Categories[0]

		over := 0
		for _, s := range stocks {
			if s > 10 {
				over++
			}
		}
		assert.Equal(t, v.Total, v.LowStock+v.OutOfStock+over, "stocks=%v", stocks)
		assert.LessOrEqual(t, v.Available, v.Total)
		assert.GreaterOrEqual(t, v.Percentage, 0)
		assert.LessOrEqual(t, v.Percentage, 100)
	}
}

func TestBuildInventoryReport_RoundsHalfUp(t *testing.T) {
	// 1 of 8 available = 12.5% -> 13
	report := BuildInventoryReport(GroupByCategory(shoes(0, 0, 0, 0, 0, 0, 0, 4)))
	require.Len(t, report.Categories, 1)
	assert.Equal(t, 13, report.Categories[0].Percentage)
}

func TestBuildInventoryReport_LowConfidenceFlag(t *testing.T) {
	// 2 of 10 = 20% -> flagged
	low := BuildInventoryReport(GroupByCategory(shoes(0, 0, 0, 0, 0, 0, 0, 0, 1, 1)))
	require.True(t, low.Categories[0].LowConfidence)

	// 3 of 10 = 30% -> exactly at threshold, not flagged
	at := BuildInventoryReport(GroupByCategory(shoes(0, 0, 0, 0, 0, 0, 0, 1, 1, 1)))
	require.False(t, at.Categories[0].LowConfidence)
}

func TestBuildInventoryReport_Idempotent(t *testing.T) {
	groups := GroupByCategory(shoes(0, 5, 20, 11))
	first := BuildInventoryReport(groups)
	second := BuildInventoryReport(groups)
	assert.Equal(t, first, second)
}

func TestServiceInventoryReport_FetchErrorPropagates(t *testing.T) {
	src := &fakeSource{productsErr: errors.New("connection refused")}
	svc := NewService(src, nil)

	_, err := svc.InventoryReport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list active products")
}

func TestServiceActiveProducts(t *testing.T) {
	src := &fakeSource{products: []records.Product{
		{ID: "p1", Name: "Runner", CategoryName: "Shoes", StockQuantity: 0},
		{ID: "p2", Name: "Cap", StockQuantity: 4},
	}}
	svc := NewService(src, nil)

	views, err := svc.ActiveProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, StockStatusOut, views[0].StockStatus)
	assert.Equal(t, "Shoes", views[0].Category)
	assert.Equal(t, StockStatusLow, views[1].StockStatus)
	assert.Equal(t, UncategorizedLabel, views[1].Category)
}
