package ingestion

import (
	"errors"
	"io"

	"price-impact-report/internal/domain"
)

// ParseStats loads the strategy statistics log (ts,buyPower,position,vwap,pnl).
func ParseStats(r io.Reader) ([]*domain.StatsRecord, error) {
	const (
		cTS = iota
		cBuyPower
		cPosition
		cVWAP
		cPnL
	)

	t, err := openTable(domain.LogKindStats, r, colTimestamp, colBuyPower, colPosition, colVWAP, colPnL)
	if err != nil {
		return nil, err
	}

	var stats []*domain.StatsRecord
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		s := &domain.StatsRecord{}
		if s.Timestamp, err = rec.timestamp(cTS); err != nil {
			return nil, err
		}
		if s.BuyPower, err = rec.decimal(cBuyPower); err != nil {
			return nil, err
		}
		if s.Position, err = rec.int(cPosition); err != nil {
			return nil, err
		}
		if s.VWAP, err = rec.decimal(cVWAP); err != nil {
			return nil, err
		}
		if s.PnL, err = rec.decimal(cPnL); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, nil
}
