package invalidator

import (
	"context"
	"sync"
	"testing"
	"time"

	kafkax "github.com/ariefcatur/go-commerce-dashboard.git/internal/kafka"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	return b, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Invalidate(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func seeded(keys ...string) *memCache {
	c := &memCache{data: map[string][]byte{}}
	for _, k := range keys {
		c.data[k] = []byte(`{}`)
	}
	return c
}

func envelope(t *testing.T, eventType string, payload any) kafkago.Message {
	t.Helper()
	env := records.Envelope{
		EventID:      "ev-1",
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "test",
		Payload:      kafkax.MustMarshal(payload),
	}
	return kafkago.Message{Value: kafkax.MustMarshal(env)}
}

func TestHandleCommerceEvent_ProductUpdated(t *testing.T) {
	cache := seeded("dash:inventory", "dash:products", "dash:metrics", "dash:orders:recent")
	svc := &Service{Cache: cache, Log: zap.NewNop()}

	m := envelope(t, records.EventProductUpdated, records.ProductUpdatedPayload{ProductID: "p1"})
	require.NoError(t, svc.HandleCommerceEvent(context.Background(), m))

	for _, gone := range []string{"dash:inventory", "dash:products", "dash:metrics"} {
		_, ok, _ := cache.Get(context.Background(), gone)
		assert.False(t, ok, "%s should be dropped", gone)
	}
	_, ok, _ := cache.Get(context.Background(), "dash:orders:recent")
	assert.True(t, ok, "order feed untouched by product updates")
}

func TestHandleCommerceEvent_OrderStatusChangedDropsTimeline(t *testing.T) {
	cache := seeded("dash:metrics", "dash:orders:recent", "dash:timeline:o42")
	svc := &Service{Cache: cache, Log: zap.NewNop()}

	m := envelope(t, records.EventOrderStatusChanged,
		records.OrderStatusChangedPayload{OrderID: "o42", Status: records.StatusShipped})
	require.NoError(t, svc.HandleCommerceEvent(context.Background(), m))

	_, ok, _ := cache.Get(context.Background(), "dash:timeline:o42")
	assert.False(t, ok)
}

func TestHandleCommerceEvent_IgnoresForeignEvents(t *testing.T) {
	cache := seeded("dash:inventory")
	svc := &Service{Cache: cache, Log: zap.NewNop()}

	m := envelope(t, "SomethingElse", map[string]string{})
	require.NoError(t, svc.HandleCommerceEvent(context.Background(), m))

	_, ok, _ := cache.Get(context.Background(), "dash:inventory")
	assert.True(t, ok)
}

func TestHandleCommerceEvent_BadEnvelope(t *testing.T) {
	svc := &Service{Cache: seeded(), Log: zap.NewNop()}
	err := svc.HandleCommerceEvent(context.Background(), kafkago.Message{Value: []byte("not json")})
	assert.Error(t, err, "undecodable messages must not be committed")
}
