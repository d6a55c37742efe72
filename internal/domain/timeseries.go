package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle is the OHLC summary of trade prices within one bucket.
// Buckets without trades have no candle.
type Candle struct {
	Start      time.Time // bucket start
	Open       decimal.Decimal
	High       decimal.Decimal
	Low        decimal.Decimal
	Close      decimal.Decimal
	TradeCount int
}

// VolumeBucket holds traded quantity per side within one bucket.
// Both volumes are non-negative; charts mirror SellVolume below zero.
type VolumeBucket struct {
	Start      time.Time // bucket start
	BuyVolume  int64
	SellVolume int64
}

// Net returns signed volume: buy minus sell.
func (b *VolumeBucket) Net() int64 {
	return b.BuyVolume - b.SellVolume
}

// DefaultCandleInterval is the bucket width used for candles and volume.
const DefaultCandleInterval = time.Second
