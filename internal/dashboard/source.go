package dashboard

import (
	"context"
	"time"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/shopspring/decimal"
)

// RecordSource is the read-only accessor the aggregators run against.
// *records.Repo is the postgres implementation; tests inject fakes.
type RecordSource interface {
	ListActiveProducts(ctx context.Context) ([]records.Product, error)
	ListRecentOrders(ctx context.Context, limit int) ([]records.Order, error)
	ListCompletedOrderAmounts(ctx context.Context) ([]decimal.Decimal, error)
	CountOrders(ctx context.Context) (int64, error)
	CountActiveProducts(ctx context.Context) (int64, error)
	CountActiveProductsWithStockAtMost(ctx context.Context, max int) (int64, error)
	GetProfile(ctx context.Context, userID string) (records.Profile, error)
	ListOrderStatusEvents(ctx context.Context, orderID string) ([]records.OrderStatusEvent, error)
}

// ViewCache is the advisory cache owned by the caller (HTTP layer,
// invalidator). Aggregators never touch it; recomputation from the record
// source must always yield the same result.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
