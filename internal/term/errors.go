package term

import (
	"errors"
	"fmt"
)

// Error kinds. Every kind is fatal for the frame loop.
var (
	ErrTerminalInit = errors.New("term: terminal init failed")
	ErrRender       = errors.New("term: render failed")
	ErrResize       = errors.New("term: resize failed")
)

// OpError records the failing terminal operation. It unwraps to both its
// kind and the underlying cause.
type OpError struct {
	Kind error
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func opErr(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Kind: kind, Op: op, Err: err}
}
