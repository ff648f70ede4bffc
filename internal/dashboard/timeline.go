package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
)

// DefaultStages is the canonical fulfillment pipeline. It is display
// configuration: the builder only consults it for pending-stage inference and
// as a fallback when an order has no events yet.
var DefaultStages = []string{
	"Order Placed",
	"Order Confirmed",
	"Order Dispatched",
	"Out for Delivery",
	"Delivered",
}

// OrderTimeline returns the fulfillment timeline for one order.
func (s *Service) OrderTimeline(ctx context.Context, orderID string) ([]OrderTimelineEntry, error) {
	events, err := s.Source.ListOrderStatusEvents(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list status events for order %s: %w", orderID, err)
	}
	return BuildTimeline(events, DefaultStages), nil
}

// BuildTimeline sorts events ascending by sequence (stable; ties broken by
// timestamp, then input order — duplicate sequences must not crash) and marks
// them all as occurred. Canonical stages after the last event that are not
// already present are appended as pending; with no events at all the whole
// canonical list is returned pending.
func BuildTimeline(events []records.OrderStatusEvent, stages []string) []OrderTimelineEntry {
	if len(events) == 0 {
		out := make([]OrderTimelineEntry, 0, len(stages))
		for _, st := range stages {
			out = append(out, OrderTimelineEntry{Step: st})
		}
		return out
	}

	sorted := make([]records.OrderStatusEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Sequence != sorted[j].Sequence {
			return sorted[i].Sequence < sorted[j].Sequence
		}
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	out := make([]OrderTimelineEntry, 0, len(sorted)+len(stages))
	seen := make(map[string]bool, len(sorted))
	for _, ev := range sorted {
		out = append(out, OrderTimelineEntry{
			Step:            ev.Step,
			Timestamp:       ev.Timestamp,
			IsCurrentOrPast: true,
		})
		seen[ev.Step] = true
	}

	// The last event is the current stage; canonical stages after it are
	// pending. If the current stage is not in the canonical list we cannot
	// place it, so nothing is appended.
	last := sorted[len(sorted)-1].Step
	for i, st := range stages {
		if st != last {
			continue
		}
		for _, rest := range stages[i+1:] {
			if !seen[rest] {
				out = append(out, OrderTimelineEntry{Step: rest})
			}
		}
		break
	}
	return out
}
