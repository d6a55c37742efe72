package ingestion

import (
	"errors"
	"fmt"
	"io"

	"price-impact-report/internal/domain"
)

// ParseStrategyEvents loads strategy on/off markers (ts,strategy,event) where
// event 1 activates and 0 deactivates. Events are returned in file order.
func ParseStrategyEvents(r io.Reader) ([]*domain.StrategyEvent, error) {
	const (
		cTS = iota
		cStrategy
		cEvent
	)

	t, err := openTable(domain.LogKindStrategyEvents, r, colTimestamp, colStrategy, colEvent)
	if err != nil {
		return nil, err
	}

	var events []*domain.StrategyEvent
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		ts, err := rec.timestamp(cTS)
		if err != nil {
			return nil, err
		}
		strategy, err := rec.nonEmpty(cStrategy)
		if err != nil {
			return nil, err
		}
		flag, err := rec.int(cEvent)
		if err != nil {
			return nil, err
		}
		if flag != 0 && flag != 1 {
			return nil, rec.fail(cEvent, fmt.Errorf("event flag must be 0 or 1, got %d", flag))
		}

		events = append(events, &domain.StrategyEvent{
			Timestamp: ts,
			Strategy:  strategy,
			Active:    flag == 1,
		})
	}

	return events, nil
}
