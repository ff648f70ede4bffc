package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service runs the four aggregation paths against one record source. It is
// stateless: every call recomputes from the source, so re-running on an
// unchanged record set yields identical output.
type Service struct {
	Source RecordSource
	Log    *zap.Logger
	Now    func() time.Time
}

func NewService(src RecordSource, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Source: src, Log: log, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// InventoryReport groups active products by category and rolls up stock
// health per group.
func (s *Service) InventoryReport(ctx context.Context) (InventoryReport, error) {
	products, err := s.Source.ListActiveProducts(ctx)
	if err != nil {
		return InventoryReport{}, fmt.Errorf("list active products: %w", err)
	}
	return BuildInventoryReport(GroupByCategory(products)), nil
}

// ActiveProducts is the product table view: every active product with its
// resolved category label and stock status.
func (s *Service) ActiveProducts(ctx context.Context) ([]ProductView, error) {
	products, err := s.Source.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		category := p.CategoryName
		if category == "" {
			category = UncategorizedLabel
		}
		out = append(out, ProductView{
			ID:            p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			Category:      category,
			Price:         p.Price,
			SalePrice:     p.SalePrice,
			StockQuantity: p.StockQuantity,
			StockStatus:   StockStatus(p.StockQuantity),
			IsFeatured:    p.IsFeatured,
		})
	}
	return out, nil
}
