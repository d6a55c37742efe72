package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the aggressor side of a trade.
type Side string

// Trade side constants
const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// ParseSide accepts "buy"/"sell" in any case, which covers the simulator's "Buy"/"Sell".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// Trade is one print of the trade tape.
type Trade struct {
	Timestamp time.Time
	Price     decimal.Decimal
	Quantity  int64
	Side      Side
}
