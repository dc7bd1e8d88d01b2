package errors

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ScriptError wraps a failure with the script it occurred in
type ScriptError struct {
	Path string // script path, or a display name for inline SQL
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// NewScriptError creates a new ScriptError
func NewScriptError(path string, err error) *ScriptError {
	return &ScriptError{Path: path, Err: err}
}

// ConnectionError represents PostgreSQL connection failure
type ConnectionError struct {
	Message    string
	Suggestion string
}

func (e *ConnectionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Suggestion)
	}
	return e.Message
}

// StatementError represents the failure of a single statement during script
// execution. It carries the statement's source span so the caller can point
// at the offending lines.
type StatementError struct {
	Script    string          // script path or display name
	LineFrom  int             // first line of the failing statement
	LineTo    int             // last line of the failing statement
	Beginning string          // leading keyword, e.g. "INSERT"
	SQLError  *pgconn.PgError // PostgreSQL error details, if any
	Err       error
}

func (e *StatementError) Error() string {
	if e.SQLError != nil {
		return fmt.Sprintf("%s:%d-%d: %s failed: [%s] %s",
			e.Script, e.LineFrom, e.LineTo, e.Beginning, e.SQLError.Code, e.SQLError.Message)
	}
	return fmt.Sprintf("%s:%d-%d: %s failed: %v",
		e.Script, e.LineFrom, e.LineTo, e.Beginning, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}
