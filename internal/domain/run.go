package domain

import "fmt"

// RunID identifies one simulator execution. Every log file of a run carries it as a suffix,
// e.g. book_20250601_120000.csv has run id "20250601_120000".
type RunID string

// String returns the string representation of RunID.
func (r RunID) String() string {
	return string(r)
}

// LogKind names one of the CSV logs written per run.
type LogKind string

const (
	LogKindBook           LogKind = "book"
	LogKindTrades         LogKind = "trades"
	LogKindStats          LogKind = "stats"
	LogKindStrategyEvents LogKind = "strategy_events"
)

// LogKinds lists every log kind a run must provide, in load order.
var LogKinds = []LogKind{LogKindBook, LogKindTrades, LogKindStats, LogKindStrategyEvents}

// String returns the string representation of LogKind.
func (k LogKind) String() string {
	return string(k)
}

// IsValid checks if the kind is a known log kind.
func (k LogKind) IsValid() bool {
	switch k {
	case LogKindBook, LogKindTrades, LogKindStats, LogKindStrategyEvents:
		return true
	}
	return false
}

// FileName returns the file name of this kind for the given run: <kind>_<run>.csv.
func (k LogKind) FileName(run RunID) string {
	return fmt.Sprintf("%s_%s.csv", k, run)
}

// ReportFileName returns the name of the HTML report written for a run.
func ReportFileName(run RunID) string {
	return fmt.Sprintf("report_%s.html", run)
}
