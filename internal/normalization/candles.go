package normalization

import (
	"time"

	"price-impact-report/internal/domain"
)

// GenerateCandles resamples trades into OHLC candles of the given interval.
//
// Bucket alignment: floor(timestamp / interval) * interval
// Aggregation per bucket, in time order:
//   - open = FIRST(price), close = LAST(price)
//   - high = MAX(price), low = MIN(price)
//
// Buckets without trades produce no candle.
func GenerateCandles(trades []*domain.Trade, interval time.Duration) []*domain.Candle {
	if len(trades) == 0 || interval <= 0 {
		return nil
	}

	var result []*domain.Candle
	var current *domain.Candle

	for _, tr := range SortTrades(trades) {
		start := bucketStart(tr.Timestamp, interval)
		if current == nil || !current.Start.Equal(start) {
			if current != nil {
				result = append(result, current)
			}
			current = &domain.Candle{
				Start:      start,
				Open:       tr.Price,
				High:       tr.Price,
				Low:        tr.Price,
				Close:      tr.Price,
				TradeCount: 1,
			}
			continue
		}

		if tr.Price.GreaterThan(current.High) {
			current.High = tr.Price
		}
		if tr.Price.LessThan(current.Low) {
			current.Low = tr.Price
		}
		current.Close = tr.Price
		current.TradeCount++
	}

	if current != nil {
		result = append(result, current)
	}

	return result
}
