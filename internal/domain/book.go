package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookUpdate is one raw line of the book log. An invalid price means the line
// carried no update for that side.
type BookUpdate struct {
	Timestamp time.Time
	BidPrice  decimal.NullDecimal
	BidQty    int64
	AskPrice  decimal.NullDecimal
	AskQty    int64
}

// BookSnapshot is the order book state at one timestamp, folded from every
// update line sharing that timestamp.
type BookSnapshot struct {
	Timestamp time.Time
	BidPrice  decimal.NullDecimal // latest bid price seen at this timestamp
	AskPrice  decimal.NullDecimal // latest ask price seen at this timestamp
	BidQty    int64               // summed bid quantity
	AskQty    int64               // summed ask quantity
}

// Imbalance returns (bid - ask) / (bid + ask), or nil when both quantities are zero.
func (s *BookSnapshot) Imbalance() *float64 {
	total := s.BidQty + s.AskQty
	if total == 0 {
		return nil
	}
	v := float64(s.BidQty-s.AskQty) / float64(total)
	return &v
}

// ImbalancePoint is the imbalance of one snapshot. Value is nil when undefined.
type ImbalancePoint struct {
	Timestamp time.Time
	Value     *float64
}
