package records

import (
	"encoding/json"
	"time"
)

const (
	EventProductUpdated     = "ProductUpdated"
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventRefreshRequested   = "DashboardRefreshRequested"
)

const (
	TopicProductUpdated     = "catalog.product.updated"
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status.changed"
	TopicDashboardRefresh   = "dashboard.refresh"
)

// AllTopics is what the invalidator subscribes to.
var AllTopics = []string{
	TopicProductUpdated,
	TopicOrderCreated,
	TopicOrderStatusChanged,
	TopicDashboardRefresh,
}

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type ProductUpdatedPayload struct {
	ProductID  string `json:"product_id"`
	CategoryID string `json:"category_id,omitempty"`
}

type OrderCreatedPayload struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
}

type OrderStatusChangedPayload struct {
	OrderID string `json:"order_id"`
	Status  Status `json:"status"`
}

type RefreshRequestedPayload struct {
	Reason string `json:"reason,omitempty"`
}

// Partition key keeps all events for one entity in order.
func PartitionKey(id string) []byte { return []byte(id) }
