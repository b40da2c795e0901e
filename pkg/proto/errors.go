package proto

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrImageNotFound     = errors.New("image not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidParameter  = errors.New("invalid parameter")
)

// Error carries a message meant for the user together with one of the
// error kinds above, so callers can both print it and test it with errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func Errorf(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}
