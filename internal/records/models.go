package records

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row. Products are never deleted, only deactivated;
// CategoryName is resolved at query time from the weak CategoryID reference
// and is empty when the reference does not resolve.
type Product struct {
	ID            string
	Name          string
	SKU           string
	Price         decimal.Decimal
	SalePrice     decimal.NullDecimal
	StockQuantity int
	Brand         string
	CategoryID    string
	CategoryName  string
	IsActive      bool
	IsFeatured    bool
	CreatedAt     time.Time
}

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
}

type Order struct {
	ID          string
	OrderNumber string
	UserID      string
	TotalAmount decimal.Decimal
	Status      Status
	CreatedAt   time.Time
}

// OrderStatusEvent is one stage of an order's fulfillment pipeline.
// Sequence is unique and increasing per order; events are only appended.
type OrderStatusEvent struct {
	ID        string
	OrderID   string
	Step      string
	Sequence  int
	Timestamp time.Time
}

// Profile is weakly referenced by Order.UserID and never owned by the order.
type Profile struct {
	ID       string
	FullName string
	Email    string
}
