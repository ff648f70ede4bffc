package dashboard

import "math"

// Below this in-stock percentage a category is flagged low-confidence.
const lowConfidencePercent = 30

// BuildInventoryReport rolls each category group up into stock-health
// counters. Empty groups are never emitted; a category with zero products
// simply has no row (and no percentage to divide for).
func BuildInventoryReport(groups *CategoryGroups) InventoryReport {
	report := InventoryReport{Categories: []CategoryInventoryView{}}
	for _, label := range groups.Labels() {
		products := groups.Products(label)
		if len(products) == 0 {
			continue
		}

		v := CategoryInventoryView{Category: label, Total: len(products)}
		for _, p := range products {
			v.TotalStock += p.StockQuantity
			switch {
			case p.StockQuantity == 0:
				v.OutOfStock++
			case p.StockQuantity <= lowStockThreshold:
				v.Available++
				v.LowStock++
			default:
				v.Available++
			}
		}
		v.Percentage = percentOf(v.Available, v.Total)
		v.LowConfidence = v.Percentage < lowConfidencePercent

		report.Categories = append(report.Categories, v)
		report.LowStockAlerts += v.LowStock
		report.OutOfStockAlerts += v.OutOfStock
	}
	report.TotalAlerts = report.LowStockAlerts + report.OutOfStockAlerts
	return report
}

// percentOf rounds half-up and clamps to [0,100]. Callers guard total > 0.
func percentOf(part, total int) int {
	p := int(math.Round(float64(part) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
