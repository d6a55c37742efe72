package normalization

import (
	"sort"
	"time"

	"price-impact-report/internal/domain"
)

// SortTrades returns a copy of trades ordered by timestamp.
// Trades sharing a timestamp keep their file order.
func SortTrades(trades []*domain.Trade) []*domain.Trade {
	sorted := append([]*domain.Trade(nil), trades...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// SortStrategyEvents returns a copy of events ordered by timestamp.
// Events sharing a timestamp keep their file order.
func SortStrategyEvents(events []*domain.StrategyEvent) []*domain.StrategyEvent {
	sorted := append([]*domain.StrategyEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// bucketStart aligns ts to the start of its bucket. Buckets are laid out from
// midnight of the timestamp's day: day + floor((ts - day) / interval) * interval.
// The last bucket of a day is cut short when interval does not divide 24h.
func bucketStart(ts time.Time, interval time.Duration) time.Time {
	day := ts.Truncate(24 * time.Hour)
	return day.Add(ts.Sub(day).Truncate(interval))
}
