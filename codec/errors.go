package codec

import (
	"errors"
	"fmt"

	"github.com/signadot/jsonv/value"
)

var (
	ErrUnsupportedValue = value.ErrUnsupportedValue
	ErrMalformedJSON    = errors.New("malformed JSON")
)

// UnsupportedValueError represents a value the encoder has no JSON form for.
type UnsupportedValueError struct {
	Path string // Path of the value (e.g., "a.b[0]"), "$" for the root
	Desc string // Go-syntax description of the value
	Err  error
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrUnsupportedValue, e.Path, e.Desc)
}

func (e *UnsupportedValueError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUnsupportedValue, e.Err}
	}
	return []error{ErrUnsupportedValue}
}

// MalformedJSONError represents input which does not form a JSON value.
type MalformedJSONError struct {
	Path   string // Path reached when the problem was found, "$" for the root
	Offset int64  // Byte offset in the input
	Msg    string
	Err    error
}

func (e *MalformedJSONError) Error() string {
	msg := fmt.Sprintf("%s at %s (offset %d): %s", ErrMalformedJSON, e.Path, e.Offset, e.Msg)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns both the sentinel and the underlying tokenizer error, if
// any, so errors.Is matches either.
func (e *MalformedJSONError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedJSON, e.Err}
	}
	return []error{ErrMalformedJSON}
}
