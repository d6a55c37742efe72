package reporting

import (
	"time"

	"price-impact-report/internal/domain"
)

// Dataset is everything the figure builder plots for one run.
type Dataset struct {
	RunID     domain.RunID
	Candles   []*domain.Candle
	Volume    []*domain.VolumeBucket
	Imbalance []*domain.ImbalancePoint
	Stats     []*domain.StatsRecord
	Intervals []*domain.StrategyInterval
}

// DataSummary describes the size and time span of a dataset.
type DataSummary struct {
	RunID          domain.RunID
	CandleCount    int
	VolumeBuckets  int
	ImbalanceCount int
	StatsCount     int
	IntervalCount  int
	Strategies     int
	Start          time.Time
	End            time.Time
}

// Summary computes the DataSummary of the dataset.
// Start and End span every timestamped series; both are zero for an empty dataset.
func (d *Dataset) Summary() DataSummary {
	s := DataSummary{
		RunID:          d.RunID,
		CandleCount:    len(d.Candles),
		VolumeBuckets:  len(d.Volume),
		ImbalanceCount: len(d.Imbalance),
		StatsCount:     len(d.Stats),
		IntervalCount:  len(d.Intervals),
	}

	seen := make(map[string]struct{})
	for _, iv := range d.Intervals {
		seen[iv.Strategy] = struct{}{}
	}
	s.Strategies = len(seen)

	span := func(ts time.Time) {
		if s.Start.IsZero() || ts.Before(s.Start) {
			s.Start = ts
		}
		if ts.After(s.End) {
			s.End = ts
		}
	}
	for _, c := range d.Candles {
		span(c.Start)
	}
	for _, p := range d.Imbalance {
		span(p.Timestamp)
	}
	for _, r := range d.Stats {
		span(r.Timestamp)
	}
	for _, iv := range d.Intervals {
		span(iv.Start)
		span(iv.End)
	}
	return s
}

// Duration is the time covered by the dataset.
func (s DataSummary) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
