package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRoute is returned for a route key with no registered schema.
var ErrUnknownRoute = errors.New("schema: unknown route")

// SchemaError reports a response that does not match its route's schema.
// It signals a contract break with the remote service (or local schema
// drift) and is never retried or coerced.
type SchemaError struct {
	Route  string
	Issues []Issue
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schema: response for %s failed validation", e.Route)
	if len(e.Issues) == 0 {
		return b.String()
	}
	b.WriteString(": ")
	b.WriteString(e.Issues[0].String())
	if n := len(e.Issues) - 1; n > 0 {
		fmt.Fprintf(&b, " (and %d more)", n)
	}
	return b.String()
}

// ErrorKind labels the error for metrics.
func (e *SchemaError) ErrorKind() string { return "schema_error" }

// IsSchemaError reports whether err is or wraps a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
