package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultFeedLimit = 5

// RecentOrders joins the limit newest orders with their profiles and formats
// the feed entries. Profile lookups fan out concurrently; a failed or missing
// lookup degrades that single order to the Guest fallback and never cancels
// its siblings.
func (s *Service) RecentOrders(ctx context.Context, limit int) ([]RecentOrderView, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	orders, err := s.Source.ListRecentOrders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}

	profiles := make([]*records.Profile, len(orders))
	g, gctx := errgroup.WithContext(ctx)
	for i, o := range orders {
		g.Go(func() error {
			p, err := s.Source.GetProfile(gctx, o.UserID)
			if err != nil {
				if !errors.Is(err, records.ErrNotFound) {
					s.Log.Warn("profile lookup failed",
						zap.String("order_id", o.ID),
						zap.String("user_id", o.UserID),
						zap.Error(err))
				}
				return nil
			}
			profiles[i] = &p
			return nil
		})
	}
	// Workers only return nil; Wait is just the fan-in barrier.
	_ = g.Wait()

	now := s.now()
	out := make([]RecentOrderView, 0, len(orders))
	for i, o := range orders {
		out = append(out, feedEntry(o, profiles[i], now))
	}
	return out, nil
}

func feedEntry(o records.Order, p *records.Profile, now time.Time) RecentOrderView {
	name, initials := resolveIdentity(p)
	return RecentOrderView{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		DisplayName: name,
		Initials:    initials,
		Amount:      o.TotalAmount,
		StatusLabel: o.Status.Label(),
		RelativeAge: humanize.RelTime(o.CreatedAt, now, "ago", "from now"),
	}
}

// Fallback chain: full name, else email, else "Guest" / "?".
func resolveIdentity(p *records.Profile) (name, initials string) {
	switch {
	case p != nil && p.FullName != "":
		return p.FullName, nameInitials(p.FullName)
	case p != nil && p.Email != "":
		return p.Email, string(unicode.ToUpper([]rune(p.Email)[0]))
	default:
		return "Guest", "?"
	}
}

func nameInitials(fullName string) string {
	var b strings.Builder
	for _, token := range strings.Fields(fullName) {
		b.WriteRune(unicode.ToUpper([]rune(token)[0]))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
