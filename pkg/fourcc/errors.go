package fourcc

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is wrapped by every *LengthError.
var ErrInvalidLength = errors.New("fourcc: invalid length")

// LengthError reports input that does not have the required number of bytes.
type LengthError struct {
	Len int // length of the rejected input in bytes
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("fourcc: invalid length: expected %d bytes, got %d", Size, e.Len)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}
