package redisx

import "time"

const (
	// Cached dashboard views. All advisory; TTLs keep staleness bounded even
	// if the invalidator falls behind.
	KeyInventoryReport = "dash:inventory"
	KeyMetrics         = "dash:metrics"
	KeyProducts        = "dash:products"
	KeyRecentOrders    = "dash:orders:recent"

	// Per-order timeline: dash:timeline:{order_id}
	KeyOrderTimeline = "dash:timeline:%s"
)

var (
	TTLInventory    = 2 * time.Minute
	TTLMetrics      = 1 * time.Minute
	TTLProducts     = 2 * time.Minute
	TTLRecentOrders = 30 * time.Second
	TTLTimeline     = 1 * time.Minute
)

// FixedViewKeys are the keys a full refresh drops. Per-order timeline keys
// are not enumerable here; they expire via TTLTimeline or are dropped
// individually on status-change events.
func FixedViewKeys() []string {
	return []string{KeyInventoryReport, KeyMetrics, KeyProducts, KeyRecentOrders}
}
