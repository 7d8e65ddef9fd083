package value

import (
	"errors"
	"fmt"
)

var ErrUnsupportedValue = errors.New("unsupported value")

// UnsupportedError reports a host value or node which has no JSON
// representation.
type UnsupportedError struct {
	Path string // path of the value from the root, "$" for the root itself
	Desc string // Go-syntax description of the offending value
}

func (e *UnsupportedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unsupported value at %s: %s", e.Path, e.Desc)
	}
	return fmt.Sprintf("unsupported value: %s", e.Desc)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupportedValue
}

func unsupported(path string, v any) error {
	return &UnsupportedError{Path: path, Desc: fmt.Sprintf("%#v", v)}
}
