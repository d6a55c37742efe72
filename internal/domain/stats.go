package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsRecord is one sampled tick of the running strategies' account metrics.
type StatsRecord struct {
	Timestamp time.Time
	BuyPower  decimal.Decimal // buying power in use
	Position  int64
	VWAP      decimal.Decimal // volume-weighted average entry price
	PnL       decimal.Decimal
}
