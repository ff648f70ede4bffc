package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("record not found")

// Repo is the postgres-backed record source for the dashboard aggregators.
// All methods are read-only.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) ListActiveProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT p.id, p.name, COALESCE(p.sku, ''), p.price, p.sale_price,
		       p.stock_quantity, COALESCE(p.brand, ''),
		       COALESCE(p.category_id::text, ''), COALESCE(c.name, ''),
		       p.is_active, p.is_featured, p.created_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = TRUE
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.SalePrice,
			&p.StockQuantity, &p.Brand, &p.CategoryID, &p.CategoryName,
			&p.IsActive, &p.IsFeatured, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListRecentOrders returns the limit most recently created orders.
func (r *Repo) ListRecentOrders(ctx context.Context, limit int) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_number, user_id, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListCompletedOrderAmounts returns the total_amount of every completed
// order. Summation stays in the aggregator so it is exact decimal math.
func (r *Repo) ListCompletedOrderAmounts(ctx context.Context) ([]decimal.Decimal, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT total_amount FROM orders WHERE status = $1`, StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []decimal.Decimal
	for rows.Next() {
		var a decimal.Decimal
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

func (r *Repo) CountActiveProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active = TRUE`).Scan(&n)
	return n, err
}

func (r *Repo) CountActiveProductsWithStockAtMost(ctx context.Context, max int) (int64, error) {
	var n int64
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active = TRUE AND stock_quantity <= $1`, max).Scan(&n)
	return n, err
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	err := r.DB.QueryRow(ctx,
		`SELECT id, COALESCE(full_name, ''), email FROM profiles WHERE id = $1`, userID).
		Scan(&p.ID, &p.FullName, &p.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return p, nil
}

func (r *Repo) ListOrderStatusEvents(ctx context.Context, orderID string) ([]OrderStatusEvent, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_id, step, sequence, created_at
		FROM order_status_events
		WHERE order_id = $1
		ORDER BY sequence, created_at`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderStatusEvent
	for rows.Next() {
		var e OrderStatusEvent
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Step, &e.Sequence, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
