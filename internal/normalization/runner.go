package normalization

import (
	"time"

	"price-impact-report/internal/domain"
)

// Input holds the parsed tables of one run.
type Input struct {
	Book   []*domain.BookSnapshot
	Trades []*domain.Trade
	Buys   []*domain.Trade
	Sells  []*domain.Trade
	Events []*domain.StrategyEvent
}

// Result holds every series derived from one run.
type Result struct {
	Candles       []*domain.Candle
	Volume        []*domain.VolumeBucket
	Imbalance     []*domain.ImbalancePoint
	Intervals     []*domain.StrategyInterval
	DroppedEvents []*domain.StrategyEvent // deactivates without a matching activate
}

// Run derives candles, volume buckets, imbalance and strategy intervals.
// Steps:
//  1. Resample trades into OHLC candles
//  2. Sum buy and sell volume per bucket
//  3. Compute imbalance per book snapshot
//  4. Pair strategy events into intervals
func Run(in Input, interval time.Duration) *Result {
	intervals, dropped := BuildStrategyIntervals(in.Events)

	return &Result{
		Candles:       GenerateCandles(in.Trades, interval),
		Volume:        GenerateVolumeBuckets(in.Buys, in.Sells, interval),
		Imbalance:     GenerateImbalanceSeries(in.Book),
		Intervals:     intervals,
		DroppedEvents: dropped,
	}
}
