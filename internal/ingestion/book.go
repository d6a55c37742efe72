package ingestion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"price-impact-report/internal/domain"
)

// bookLinePattern selects data lines of the book log; headers and noise are skipped.
var bookLinePattern = regexp.MustCompile(`^\d{4}-\d\d-\d\dT\d\d:\d\d`)

// bookFields is the field count of a book line: ts,bidPrice,bidQty,askPrice,askQty.
const bookFields = 5

// BookLog is the parsed book log.
type BookLog struct {
	Snapshots []*domain.BookSnapshot // one per distinct timestamp, in file order
	Lines     int                    // data lines folded into snapshots
	Skipped   int                    // lines not starting with a timestamp
}

// BookAccumulator folds consecutive book updates that share a timestamp into one snapshot.
// Quantities are summed and the latest non-empty price per side wins.
type BookAccumulator struct {
	current *domain.BookSnapshot
}

// NewBookAccumulator creates an empty accumulator.
func NewBookAccumulator() *BookAccumulator {
	return &BookAccumulator{}
}

// Add folds u into the pending snapshot. If u starts a new timestamp, the pending
// snapshot is returned and a new one is started from u; otherwise Add returns nil.
func (a *BookAccumulator) Add(u domain.BookUpdate) *domain.BookSnapshot {
	var flushed *domain.BookSnapshot
	if a.current != nil && !a.current.Timestamp.Equal(u.Timestamp) {
		flushed = a.current
		a.current = nil
	}
	if a.current == nil {
		a.current = &domain.BookSnapshot{Timestamp: u.Timestamp}
	}

	if u.BidPrice.Valid {
		a.current.BidPrice = u.BidPrice
		a.current.BidQty += u.BidQty
	}
	if u.AskPrice.Valid {
		a.current.AskPrice = u.AskPrice
		a.current.AskQty += u.AskQty
	}

	return flushed
}

// Flush returns the pending snapshot, if any, and resets the accumulator.
func (a *BookAccumulator) Flush() *domain.BookSnapshot {
	s := a.current
	a.current = nil
	return s
}

// ParseBookLine parses one data line of the book log. An empty price leaves that
// side without an update; a present price requires an integer quantity.
func ParseBookLine(line string) (domain.BookUpdate, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != bookFields {
		return domain.BookUpdate{}, fmt.Errorf("expected %d fields, got %d", bookFields, len(fields))
	}

	ts, err := ParseTimestamp(fields[0])
	if err != nil {
		return domain.BookUpdate{}, err
	}
	u := domain.BookUpdate{Timestamp: ts}

	if u.BidPrice, u.BidQty, err = parseBookSide(fields[1], fields[2]); err != nil {
		return domain.BookUpdate{}, fmt.Errorf("bid: %w", err)
	}
	if u.AskPrice, u.AskQty, err = parseBookSide(fields[3], fields[4]); err != nil {
		return domain.BookUpdate{}, fmt.Errorf("ask: %w", err)
	}

	return u, nil
}

func parseBookSide(price, qty string) (decimal.NullDecimal, int64, error) {
	price = strings.TrimSpace(price)
	if price == "" {
		return decimal.NullDecimal{}, 0, nil
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.NullDecimal{}, 0, err
	}
	q, err := strconv.ParseInt(strings.TrimSpace(qty), 10, 64)
	if err != nil {
		return decimal.NullDecimal{}, 0, err
	}
	return decimal.NewNullDecimal(p), q, nil
}

// ParseBook streams the book log and reconstructs one snapshot per distinct timestamp.
// Any malformed data line aborts parsing with a *ParseError.
func ParseBook(r io.Reader) (*BookLog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	acc := NewBookAccumulator()
	result := &BookLog{}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !bookLinePattern.MatchString(line) {
			result.Skipped++
			continue
		}

		u, err := ParseBookLine(line)
		if err != nil {
			return nil, &ParseError{Kind: domain.LogKindBook, Line: lineNo, Err: err}
		}
		result.Lines++

		if s := acc.Add(u); s != nil {
			result.Snapshots = append(result.Snapshots, s)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Kind: domain.LogKindBook, Line: lineNo + 1, Err: err}
		}
		return nil, fmt.Errorf("read book log: %w", err)
	}

	if s := acc.Flush(); s != nil {
		result.Snapshots = append(result.Snapshots, s)
	}

	return result, nil
}
