package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// View models handed to the presentation layer. Serialization format is the
// caller's concern; json tags only fix the field names.

type CategoryInventoryView struct {
	Category      string `json:"category"`
	Total         int    `json:"total"`
	Available     int    `json:"available"`
	Percentage    int    `json:"percentage"`
	LowStock      int    `json:"low_stock"`
	OutOfStock    int    `json:"out_of_stock"`
	TotalStock    int    `json:"total_stock"`
	LowConfidence bool   `json:"low_confidence"`
}

type InventoryReport struct {
	Categories       []CategoryInventoryView `json:"categories"`
	LowStockAlerts   int                     `json:"low_stock_alerts"`
	OutOfStockAlerts int                     `json:"out_of_stock_alerts"`
	TotalAlerts      int                     `json:"total_alerts"`
}

type DashboardMetrics struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int64           `json:"total_orders"`
	TotalProducts int64           `json:"total_products"`
	LowStockCount int64           `json:"low_stock_count"`
}

type RecentOrderView struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	DisplayName string          `json:"display_name"`
	Initials    string          `json:"initials"`
	Amount      decimal.Decimal `json:"amount"`
	StatusLabel string          `json:"status_label"`
	RelativeAge string          `json:"relative_age"`
}

// OrderTimelineEntry is one stage of an order's fulfillment. Pending stages
// (inferred from the canonical stage table) carry a zero Timestamp and
// IsCurrentOrPast=false.
type OrderTimelineEntry struct {
	Step            string    `json:"step"`
	Timestamp       time.Time `json:"timestamp"`
	IsCurrentOrPast bool      `json:"is_current_or_past"`
}

type ProductView struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	SKU           string              `json:"sku,omitempty"`
	Category      string              `json:"category"`
	Price         decimal.Decimal     `json:"price"`
	SalePrice     decimal.NullDecimal `json:"sale_price,omitempty"`
	StockQuantity int                 `json:"stock_quantity"`
	StockStatus   string              `json:"stock_status"`
	IsFeatured    bool                `json:"is_featured"`
}
