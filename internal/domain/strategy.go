package domain

import "time"

// StrategyEvent marks a strategy being switched on (Active) or off.
type StrategyEvent struct {
	Timestamp time.Time
	Strategy  string
	Active    bool
}

// StrategyInterval is one contiguous period during which a strategy was active: [Start, End).
type StrategyInterval struct {
	Strategy string
	Start    time.Time
	End      time.Time
}

// Duration returns the length of the interval.
func (i *StrategyInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
