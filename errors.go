package sketch

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is reported when a point or slot index does not address
// an existing element. Use errors.Is to test for it; the concrete error is an
// [*IndexError].
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes an operation that was given an index outside [0, Len).
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}
