package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/dashboard"
	kafkax "github.com/ariefcatur/go-commerce-dashboard.git/internal/kafka"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const maxFeedLimit = 50

type DashboardHandler struct {
	Service  *dashboard.Service
	Cache    dashboard.ViewCache // optional; nil disables caching
	Producer *kafkax.Producer    // optional; nil disables refresh broadcast
	Log      *zap.Logger
	Name     string
}

func (h *DashboardHandler) Register(r *chi.Mux) {
	r.Get("/dashboard/inventory", h.inventory)
	r.Get("/dashboard/metrics", h.metrics)
	r.Get("/dashboard/orders/recent", h.recentOrders)
	r.Get("/dashboard/products", h.products)
	r.Get("/orders/{id}/timeline", h.orderTimeline)
	r.Post("/dashboard/refresh", h.refresh)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, code int, b []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// serveCached is the cache-aside read path: serve the cached bytes if redis
// has them, otherwise recompute, respond, and cache advisorily. A redis
// failure is logged and treated as a miss; it never fails the request.
func (h *DashboardHandler) serveCached(w http.ResponseWriter, r *http.Request,
	key string, ttl time.Duration, view string, compute func(ctx context.Context) (any, error)) {

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.Cache != nil && key != "" {
		b, ok, err := h.Cache.Get(ctx, key)
		if err != nil {
			h.Log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			writeRaw(w, http.StatusOK, b)
			return
		}
	}

	v, err := compute(ctx)
	RecordAggregation(view, err)
	if err != nil {
		h.Log.Error("aggregation failed", zap.String("view", view), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if h.Cache != nil && key != "" {
		if err := h.Cache.Set(ctx, key, b, ttl); err != nil {
			h.Log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	writeRaw(w, http.StatusOK, b)
}

func (h *DashboardHandler) inventory(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, redisx.KeyInventoryReport, redisx.TTLInventory, "inventory",
		func(ctx context.Context) (any, error) { return h.Service.InventoryReport(ctx) })
}

func (h *DashboardHandler) metrics(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, redisx.KeyMetrics, redisx.TTLMetrics, "metrics",
		func(ctx context.Context) (any, error) { return h.Service.Metrics(ctx) })
}

func (h *DashboardHandler) products(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, redisx.KeyProducts, redisx.TTLProducts, "products",
		func(ctx context.Context) (any, error) { return h.Service.ActiveProducts(ctx) })
}

func (h *DashboardHandler) recentOrders(w http.ResponseWriter, r *http.Request) {
	limit := dashboard.DefaultFeedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxFeedLimit {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	// Only the default page is cached; ad-hoc limits are computed fresh.
	key := ""
	if limit == dashboard.DefaultFeedLimit {
		key = redisx.KeyRecentOrders
	}
	h.serveCached(w, r, key, redisx.TTLRecentOrders, "recent_orders",
		func(ctx context.Context) (any, error) { return h.Service.RecentOrders(ctx, limit) })
}

func (h *DashboardHandler) orderTimeline(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}
	key := fmt.Sprintf(redisx.KeyOrderTimeline, orderID)
	h.serveCached(w, r, key, redisx.TTLTimeline, "timeline",
		func(ctx context.Context) (any, error) { return h.Service.OrderTimeline(ctx, orderID) })
}

// refresh drops this replica's cached views and broadcasts a refresh event so
// the invalidator drops everyone else's.
func (h *DashboardHandler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if h.Cache != nil {
		if err := h.Cache.Invalidate(ctx, redisx.FixedViewKeys()...); err != nil {
			h.Log.Warn("cache invalidate failed", zap.Error(err))
		}
	}

	if h.Producer != nil {
		ev := records.Envelope{
			EventID:      uuid.NewString(),
			EventType:    records.EventRefreshRequested,
			EventVersion: 1,
			OccurredAt:   time.Now().UTC(),
			Producer:     h.Name,
			TraceID:      r.Header.Get("X-Request-Id"),
		}
		ev.Payload = kafkax.MustMarshal(records.RefreshRequestedPayload{Reason: "manual"})
		h.Producer.Publish(records.PartitionKey("dashboard"), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(records.EventRefreshRequested)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh requested"})
}
