package connection

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCursor  = errors.New("malformed cursor")
	ErrCursorConnection = errors.New("cursor can not be used with this connection")
	ErrCursorOrderBy    = errors.New("cursor can not be used for this orderBy value")
)

// CursorError is a client input error for a `before` or `after` argument.
type CursorError struct {
	// Argument is "before" or "after".
	Argument string
	Err      error
}

func (e *CursorError) Error() string {
	switch {
	case errors.Is(e.Err, ErrCursorConnection):
		return fmt.Sprintf("`%s` cursor can not be used with this connection.", e.Argument)
	case errors.Is(e.Err, ErrCursorOrderBy):
		return fmt.Sprintf("`%s` cursor can not be used for this `orderBy` value.", e.Argument)
	default:
		return fmt.Sprintf("`%s` cursor is invalid: %v", e.Argument, e.Err)
	}
}

func (e *CursorError) Unwrap() error {
	return e.Err
}
