package dashboard

import "github.com/ariefcatur/go-commerce-dashboard.git/internal/records"

// UncategorizedLabel is the display fallback for products whose category
// reference does not resolve. It is not a persisted category.
const UncategorizedLabel = "Uncategorized"

// lowStockThreshold: at or below this many units a product counts as low
// stock.
const lowStockThreshold = 10

const (
	StockStatusOut    = "Out of Stock"
	StockStatusLow    = "Low Stock"
	StockStatusActive = "Active"
)

func StockStatus(stockQuantity int) string {
	switch {
	case stockQuantity == 0:
		return StockStatusOut
	case stockQuantity <= lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusActive
	}
}

// CategoryGroups is a partition of products by resolved category label.
// Labels() preserves first-seen order so output is deterministic.
type CategoryGroups struct {
	labels  []string
	byLabel map[string][]records.Product
}

func GroupByCategory(products []records.Product) *CategoryGroups {
	g := &CategoryGroups{byLabel: make(map[string][]records.Product)}
	for _, p := range products {
		label := p.CategoryName
		if label == "" {
			label = UncategorizedLabel
		}
		if _, ok := g.byLabel[label]; !ok {
			g.labels = append(g.labels, label)
		}
		g.byLabel[label] = append(g.byLabel[label], p)
	}
	return g
}

func (g *CategoryGroups) Labels() []string { return g.labels }

func (g *CategoryGroups) Products(label string) []records.Product { return g.byLabel[label] }
