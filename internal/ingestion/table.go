package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"price-impact-report/internal/domain"
)

// column lists the accepted header names of one logical column.
// The first name is the one reported in errors.
type column []string

var (
	colTimestamp = column{"ts", "timestamp"}
	colPrice     = column{"price"}
	colQuantity  = column{"qty", "quantity"}
	colSide      = column{"side"}
	colBuyPower  = column{"buyPower", "buy_power"}
	colPosition  = column{"position"}
	colVWAP      = column{"vwap"}
	colPnL       = column{"pnl"}
	colStrategy  = column{"strategy"}
	colEvent     = column{"event"}
)

// utf8BOM is written by the simulator's StreamWriter at the start of every file.
const utf8BOM = "\ufeff"

// table reads a header-driven CSV log. Columns are located by name so the
// order written by the simulator does not matter.
type table struct {
	kind   domain.LogKind
	reader *csv.Reader
	cols   []column
	index  []int
}

// row is one data record of a table.
type row struct {
	t      *table
	fields []string
	line   int
}

func openTable(kind domain.LogKind, r io.Reader, cols ...column) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Kind: kind, Line: 1, Err: errors.New("missing header")}
		}
		return nil, &ParseError{Kind: kind, Line: 1, Err: err}
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, utf8BOM)
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	t := &table{kind: kind, reader: cr, cols: cols, index: make([]int, len(cols))}
	for i, col := range cols {
		found := false
		for _, name := range col {
			if pos, ok := positions[strings.ToLower(name)]; ok {
				t.index[i] = pos
				found = true
				break
			}
		}
		if !found {
			return nil, &ParseError{Kind: kind, Line: 1, Field: col[0], Err: errors.New("column not found in header")}
		}
	}

	return t, nil
}

// next returns the next record, or io.EOF when the table is exhausted.
func (t *table) next() (row, error) {
	fields, err := t.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return row{}, io.EOF
		}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return row{}, &ParseError{Kind: t.kind, Line: csvErr.Line, Err: csvErr.Err}
		}
		return row{}, &ParseError{Kind: t.kind, Err: err}
	}
	line, _ := t.reader.FieldPos(0)
	return row{t: t, fields: fields, line: line}, nil
}

func (r row) fail(col int, err error) error {
	return &ParseError{Kind: r.t.kind, Line: r.line, Field: r.t.cols[col][0], Err: err}
}

func (r row) str(col int) string {
	return strings.TrimSpace(r.fields[r.t.index[col]])
}

func (r row) timestamp(col int) (time.Time, error) {
	ts, err := ParseTimestamp(r.str(col))
	if err != nil {
		return time.Time{}, r.fail(col, err)
	}
	return ts, nil
}

func (r row) decimal(col int) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(r.str(col))
	if err != nil {
		return decimal.Decimal{}, r.fail(col, err)
	}
	return d, nil
}

func (r row) int(col int) (int64, error) {
	n, err := strconv.ParseInt(r.str(col), 10, 64)
	if err != nil {
		return 0, r.fail(col, err)
	}
	return n, nil
}

func (r row) nonEmpty(col int) (string, error) {
	s := r.str(col)
	if s == "" {
		return "", r.fail(col, fmt.Errorf("empty value"))
	}
	return s, nil
}
