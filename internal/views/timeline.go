package views

import (
	"sort"
	"time"

	"ccm-mcp/internal/market"
)

// MonthlyPoint is one calendar month of market activity: summed volume and
// mean price across that month's transactions.
type MonthlyPoint struct {
	Month        string  `json:"month"` // YYYY-MM, UTC
	Volume       float64 `json:"volume"`
	MeanPrice    float64 `json:"mean_price"`
	Transactions int     `json:"transactions"`
}

// TimelineMetrics summarizes a filtered monthly series.
type TimelineMetrics struct {
	Months     int     `json:"months"`
	PeakVolume float64 `json:"peak_volume"`
	MeanPrice  float64 `json:"mean_price"`
}

// MonthlyTimeline groups credits by the calendar month (UTC) of their
// transaction date, summing volume and averaging price per month. Credits
// without a transaction date are skipped. A non-zero from/to bounds the
// result (inclusive, by transaction date).
func MonthlyTimeline(credits []market.Credit, from, to time.Time) []MonthlyPoint {
	type bucket struct {
		volume float64
		prices []float64
	}
	buckets := make(map[string]*bucket)

	for _, c := range credits {
		if c.TransactionDate == nil {
			continue
		}
		ts := c.TransactionDate.UTC()
		if !from.IsZero() && ts.Before(from) {
			continue
		}
		if !to.IsZero() && ts.After(to) {
			continue
		}
		key := ts.Format("2006-01")
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.volume += c.Volume
		b.prices = append(b.prices, c.Price)
	}

	points := make([]MonthlyPoint, 0, len(buckets))
	for month, b := range buckets {
		points = append(points, MonthlyPoint{
			Month:        month,
			Volume:       b.volume,
			MeanPrice:    mean(b.prices),
			Transactions: len(b.prices),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

// SummarizeTimeline computes the period metrics over a monthly series: months
// analyzed, peak monthly volume, and the mean of the monthly mean prices.
func SummarizeTimeline(points []MonthlyPoint) TimelineMetrics {
	m := TimelineMetrics{Months: len(points)}
	prices := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Volume > m.PeakVolume {
			m.PeakVolume = p.Volume
		}
		prices = append(prices, p.MeanPrice)
	}
	m.MeanPrice = mean(prices)
	return m
}
