package services

import "fmt"

// QueryError wraps a failure during a find, aggregate, or count call. Query
// errors are terminal for their request only; the cached connection handle
// is left intact.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
