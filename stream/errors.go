package stream

import "fmt"

// Error represents a stream error: misuse of the encoder, an invalid option,
// or a syntax error reported by the tokenizer.
type Error struct {
	Msg    string
	Offset int64 // byte offset in the input, 0 when unknown
	Err    error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Offset > 0 {
		return fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
