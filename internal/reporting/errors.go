package reporting

import "errors"

// ErrWrite is returned when the report file cannot be written.
var ErrWrite = errors.New("write report")
