package ingestion

import (
	"errors"
	"fmt"

	"price-impact-report/internal/domain"
)

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("parse error")

// ParseError describes a log row that failed type coercion.
type ParseError struct {
	Kind  domain.LogKind
	Line  int    // 1-based line in the source file, 0 if unknown
	Field string // column name, empty for whole-row failures
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse %s log line %d: %v", e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s log line %d: field %s: %v", e.Kind, e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
