package sheet

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by index-addressed operations whose index
// falls outside the addressed sequence. The document is left unchanged.
var ErrIndexOutOfRange = errors.New("index out of range")

func indexError(op string, index, length int) error {
	return fmt.Errorf("%s: index %d not in [0, %d): %w", op, index, length, ErrIndexOutOfRange)
}
