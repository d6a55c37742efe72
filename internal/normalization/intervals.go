package normalization

import (
	"sort"

	"price-impact-report/internal/domain"
)

// BuildStrategyIntervals pairs activate/deactivate events into active intervals.
//
// Events are ordered by time, then each strategy is walked with an open-start pointer:
//   - activate with no open start opens one; activate while open is ignored
//   - deactivate with an open start closes [start, ts)
//   - deactivate with no open start is returned in dropped and produces no interval
//
// A start still open at the end closes at the latest timestamp across all strategies.
// Intervals are ordered by strategy name, then start.
func BuildStrategyIntervals(events []*domain.StrategyEvent) (intervals []*domain.StrategyInterval, dropped []*domain.StrategyEvent) {
	if len(events) == 0 {
		return nil, nil
	}

	sorted := SortStrategyEvents(events)
	end := sorted[len(sorted)-1].Timestamp

	byStrategy := make(map[string][]*domain.StrategyEvent)
	for _, e := range sorted {
		byStrategy[e.Strategy] = append(byStrategy[e.Strategy], e)
	}

	names := make([]string, 0, len(byStrategy))
	for name := range byStrategy {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var open *domain.StrategyEvent
		for _, e := range byStrategy[name] {
			switch {
			case e.Active && open == nil:
				open = e
			case !e.Active && open != nil:
				intervals = append(intervals, &domain.StrategyInterval{
					Strategy: name,
					Start:    open.Timestamp,
					End:      e.Timestamp,
				})
				open = nil
			case !e.Active:
				dropped = append(dropped, e)
			}
		}
		if open != nil {
			intervals = append(intervals, &domain.StrategyInterval{
				Strategy: name,
				Start:    open.Timestamp,
				End:      end,
			})
		}
	}

	return intervals, dropped
}

// StrategyNames returns the distinct strategy names of intervals in first-seen order.
func StrategyNames(intervals []*domain.StrategyInterval) []string {
	seen := make(map[string]bool)
	var names []string
	for _, iv := range intervals {
		if !seen[iv.Strategy] {
			seen[iv.Strategy] = true
			names = append(names, iv.Strategy)
		}
	}
	return names
}
