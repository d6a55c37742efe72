package ingestion

import (
	"errors"
	"io"

	"price-impact-report/internal/domain"
)

// ParseTrades loads the trade tape. Columns are matched by header name
// (the simulator writes ts,side,price,qty). Trades are returned in file order;
// duplicates are kept.
func ParseTrades(r io.Reader) ([]*domain.Trade, error) {
	const (
		cTS = iota
		cPrice
		cQty
		cSide
	)

	t, err := openTable(domain.LogKindTrades, r, colTimestamp, colPrice, colQuantity, colSide)
	if err != nil {
		return nil, err
	}

	var trades []*domain.Trade
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
		price, err := rec.decimal(cPrice)
		if err != nil {
			return nil, err
		}
		qty, err := rec.int(cQty)
		if err != nil {
			return nil, err
		}
		side, err := domain.ParseSide(rec.str(cSide))
		if err != nil {
			return nil, rec.fail(cSide, err)
		}

		trades = append(trades, &domain.Trade{
			Timestamp: ts,
			Price:     price,
			Quantity:  qty,
			Side:      side,
		})
	}

	return trades, nil
}

// SplitBySide partitions trades into buy and sell subsets, preserving order.
func SplitBySide(trades []*domain.Trade) (buys, sells []*domain.Trade) {
	for _, tr := range trades {
		switch tr.Side {
		case domain.SideBuy:
			buys = append(buys, tr)
		case domain.SideSell:
			sells = append(sells, tr)
		}
	}
	return buys, sells
}
