package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Metrics computes the four top-line counters against the full record set.
//
// Note the low-stock definition here includes zero-stock products, unlike the
// category-level LowStock in the inventory report which counts only
// 0 < stock <= threshold. The two figures are displayed side by side in the
// original dashboard and are kept distinct on purpose.
func (s *Service) Metrics(ctx context.Context) (DashboardMetrics, error) {
	amounts, err := s.Source.ListCompletedOrderAmounts(ctx)
	if err != nil {
		return DashboardMetrics{}, fmt.Errorf("list completed order amounts: %w", err)
	}
	revenue := decimal.Zero
	for _, a := range amounts {
		revenue = revenue.Add(a)
	}

	orders, err := s.Source.CountOrders(ctx)
	if err != nil {
		return DashboardMetrics{}, fmt.Errorf("count orders: %w", err)
	}
	products, err := s.Source.CountActiveProducts(ctx)
	if err != nil {
		return DashboardMetrics{}, fmt.Errorf("count active products: %w", err)
	}
	lowStock, err := s.Source.CountActiveProductsWithStockAtMost(ctx, lowStockThreshold)
	if err != nil {
		return DashboardMetrics{}, fmt.Errorf("count low-stock products: %w", err)
	}

	return DashboardMetrics{
		TotalRevenue:  revenue,
		TotalOrders:   orders,
		TotalProducts: products,
		LowStockCount: lowStock,
	}, nil
}
