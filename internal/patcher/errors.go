package patcher

import (
	"errors"
	"fmt"
)

// ErrNoRules is returned when a Patcher is run without any transformation rules.
var ErrNoRules = errors.New("at least one transformation rule is required")

// NotFoundError is returned when the jobs file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cron jobs file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the jobs file is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError is returned when the document parses but has the wrong shape.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing or invalid jobs array in %s: %s", e.Path, e.Reason)
}

// WriteError wraps a failure to persist either the backup or the patched file.
// Stage tells which of the two writes failed.
type WriteError struct {
	Stage string
	Path  string
	Err   error
}

const (
	StageBackup = "backup"
	StageWrite  = "write"
)

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Kind returns a short machine-friendly name of the error class, used as a metrics label.
func Kind(err error) string {
	var (
		notFound *NotFoundError
		parse    *ParseError
		schema   *SchemaError
		write    *WriteError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &parse):
		return "parse"
	case errors.As(err, &schema):
		return "schema"
	case errors.As(err, &write):
		return write.Stage
	case errors.Is(err, ErrNoRules):
		return "config"
	default:
		return "unknown"
	}
}
