package invalidator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/dashboard"
	kafkax "github.com/ariefcatur/go-commerce-dashboard.git/internal/kafka"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/redisx"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Service drops cached dashboard views when commerce records change.
// Invalidation is idempotent, so redelivered events need no dedup.
type Service struct {
	Cache dashboard.ViewCache
	Log   *zap.Logger
}

// HandleCommerceEvent is the consumer handler for all subscribed topics.
func (s *Service) HandleCommerceEvent(ctx context.Context, m kafkago.Message) error {
	var env records.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	var keys []string
	switch env.EventType {
	case records.EventProductUpdated:
		keys = []string{redisx.KeyInventoryReport, redisx.KeyProducts, redisx.KeyMetrics}
	case records.EventOrderCreated:
		keys = []string{redisx.KeyMetrics, redisx.KeyRecentOrders}
	case records.EventOrderStatusChanged:
		keys = []string{redisx.KeyMetrics, redisx.KeyRecentOrders}
		if p, err := kafkax.UnwrapPayload[records.OrderStatusChangedPayload](env.Payload); err == nil && p.OrderID != "" {
			keys = append(keys, fmt.Sprintf(redisx.KeyOrderTimeline, p.OrderID))
		}
	case records.EventRefreshRequested:
		keys = redisx.FixedViewKeys()
	default:
		return nil // not ours
	}

	if err := s.Cache.Invalidate(ctx, keys...); err != nil {
		return fmt.Errorf("invalidate %v: %w", keys, err)
	}
	s.Log.Info("cache invalidated",
		zap.String("event_type", env.EventType),
		zap.String("event_id", env.EventID),
		zap.Strings("keys", keys))
	return nil
}
