package dashboard

import (
	"context"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/shopspring/decimal"
)

// fakeSource is an in-memory RecordSource for aggregator tests.
type fakeSource struct {
	products []records.Product
	orders   []records.Order
	amounts  []decimal.Decimal
	profiles map[string]records.Profile
	events   []records.OrderStatusEvent

	orderCount    int64
	productCount  int64
	lowStockCount int64

	productsErr   error
	ordersErr     error
	amountsErr    error
	eventsErr     error
	profileErrFor map[string]error

	lastFeedLimit int
	productCalls  int
}

func (f *fakeSource) ListActiveProducts(ctx context.Context) ([]records.Product, error) {
	f.productCalls++
	return f.products, f.productsErr
}

func (f *fakeSource) ListRecentOrders(ctx context.Context, limit int) ([]records.Order, error) {
	f.lastFeedLimit = limit
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	if limit < len(f.orders) {
		return f.orders[:limit], nil
	}
	return f.orders, nil
}

func (f *fakeSource) ListCompletedOrderAmounts(ctx context.Context) ([]decimal.Decimal, error) {
	return f.amounts, f.amountsErr
}

func (f *fakeSource) CountOrders(ctx context.Context) (int64, error) {
	return f.orderCount, nil
}

func (f *fakeSource) CountActiveProducts(ctx context.Context) (int64, error) {
	return f.productCount, nil
}

func (f *fakeSource) CountActiveProductsWithStockAtMost(ctx context.Context, max int) (int64, error) {
	return f.lowStockCount, nil
}

func (f *fakeSource) GetProfile(ctx context.Context, userID string) (records.Profile, error) {
	if err, ok := f.profileErrFor[userID]; ok {
		return records.Profile{}, err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return records.Profile{}, records.ErrNotFound
	}
	return p, nil
}

func (f *fakeSource) ListOrderStatusEvents(ctx context.Context, orderID string) ([]records.OrderStatusEvent, error) {
	return f.events, f.eventsErr
}
