package discovery

import "errors"

// Discovery errors.
var (
	// ErrNoLogsFound is returned when the log directory holds no book log.
	ErrNoLogsFound = errors.New("no log files found")

	// ErrFileMissing is returned when a log file of the resolved run does not exist.
	ErrFileMissing = errors.New("log file missing")
)
