// Package metrics derives financial metrics from the three business
// collections. Everything in here is a pure function over in-memory slices:
// no I/O, no stored state, and no failure modes. Monetary sums are carried
// in integer cents and converted to decimals only for the final snapshot, so
// ledger summation never accumulates floating-point drift.
package metrics

import (
	"time"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/google/uuid"
)

// DefaultLowStockThreshold is the stock level below which a product is
// flagged, used when no threshold is configured.
const DefaultLowStockThreshold = 10

// Snapshot holds the derived metrics for the current collections.
// It is recomputed on demand and never persisted.
type Snapshot struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalAdSpend     float64 `json:"total_ad_spend"`
	TotalCostOfGoods float64 `json:"total_cost_of_goods"`
	NetProfit        float64 `json:"net_profit"`
	Margin           float64 `json:"margin"` // Percentage; 0 when revenue is 0
	ROAS             float64 `json:"roas"`   // Revenue per ad dollar; 0 when ad spend is 0
}

// Compute derives a Snapshot from the current collections in a single pass
// per ledger. A sale whose product no longer exists contributes zero to the
// cost of goods; its frozen revenue still counts. Compute never fails.
func Compute(products []entity.Product, sales []entity.Sale, ads []entity.AdSpend) Snapshot {
	costByID := make(map[uuid.UUID]int64, len(products))
	for i := range products {
		costByID[products[i].ID] = products[i].Cost
	}

	var revenue, cost, spend int64
	for i := range sales {
		revenue += sales[i].Revenue
		if unitCost, ok := costByID[sales[i].ProductID]; ok {
			cost += unitCost * int64(sales[i].Quantity)
		}
	}
	for i := range ads {
		spend += ads[i].Amount
	}

	snap := Snapshot{
		TotalRevenue:     float64(revenue) / 100,
		TotalAdSpend:     float64(spend) / 100,
		TotalCostOfGoods: float64(cost) / 100,
	}
	snap.NetProfit = snap.TotalRevenue - snap.TotalCostOfGoods - snap.TotalAdSpend
	if snap.TotalRevenue > 0 {
		snap.Margin = snap.NetProfit / snap.TotalRevenue * 100
	}
	if snap.TotalAdSpend > 0 {
		snap.ROAS = snap.TotalRevenue / snap.TotalAdSpend
	}
	return snap
}

// LowStock returns the products with stock below threshold, preserving
// input order. A threshold below 1 falls back to the default.
func LowStock(products []entity.Product, threshold int) []entity.Product {
	if threshold < 1 {
		threshold = DefaultLowStockThreshold
	}
	low := make([]entity.Product, 0)
	for _, p := range products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low
}

// SeriesPoint is one calendar-day bucket of the performance chart
type SeriesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	AdSpend float64 `json:"ad_spend"`
}

// WeeklySeries buckets sale revenue and ad spend by calendar day over the
// inclusive range [end-(days-1), end], in ascending date order. Days with no
// records yield zero-valued buckets; the result always has exactly `days`
// entries. Matching is by exact calendar date, no timezone normalization.
func WeeklySeries(sales []entity.Sale, ads []entity.AdSpend, end time.Time, days int) []SeriesPoint {
	if days < 1 {
		return []SeriesPoint{}
	}

	revenueByDay := make(map[string]int64, len(sales))
	for i := range sales {
		revenueByDay[sales[i].DateString()] += sales[i].Revenue
	}
	spendByDay := make(map[string]int64, len(ads))
	for i := range ads {
		spendByDay[ads[i].DateString()] += ads[i].Amount
	}

	series := make([]SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format(entity.DateLayout)
		series = append(series, SeriesPoint{
			Date:    day,
			Revenue: float64(revenueByDay[day]) / 100,
			AdSpend: float64(spendByDay[day]) / 100,
		})
	}
	return series
}
