package eventlog

import "fmt"

// NotFoundError indicates the event log path does not resolve to a file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("event log not found: %s", e.Path)
}

// MalformedInputError indicates the log content is not a well-formed
// event collection: invalid JSON, or a record missing required fields.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed event log %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// TimeParseError indicates a record's timestamp matches neither accepted
// layout. Per-record and recoverable: the caller drops the record with a
// warning instead of aborting the run.
type TimeParseError struct {
	Value string
	Err   error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("could not parse time data %q", e.Value)
}

func (e *TimeParseError) Unwrap() error {
	return e.Err
}
