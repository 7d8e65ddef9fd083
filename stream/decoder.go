package stream

import (
	"io"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/signadot/jsonv/value"
)

// Decoder provides structural event-based decoding of JSON text.
//
// The input may hold any number of whitespace separated top level values.
// Object member names are reported as EventKey; duplicate names are passed
// through to the caller.
type Decoder struct {
	source *jsontext.Decoder
	state  *State
	opts   *streamOpts
	cur    *Event
}

// NewDecoder creates a new Decoder reading from r.
func NewDecoder(r io.Reader, opts ...StreamOption) (*Decoder, error) {
	so, err := buildOpts(opts)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		source: newSource(r),
		state:  NewState(),
		opts:   so,
	}, nil
}

func newSource(r io.Reader) *jsontext.Decoder {
	return jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true))
}

// ReadEvent reads the next structural event from the stream.
// Low-level tokens (commas, colons) are elided.
// Returns io.EOF when the stream is exhausted between top level values.
// Syntax errors are returned as *Error carrying the input offset.
func (d *Decoder) ReadEvent() (*Event, error) {
	d.cur = nil
	tok, err := d.source.ReadToken()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, &Error{
			Msg:    "invalid JSON",
			Offset: d.source.InputOffset(),
			Err:    err,
		}
	}
	event := d.tokenToEvent(tok)
	if err := d.state.ProcessEvent(event); err != nil {
		return nil, err
	}
	d.cur = event
	return event, nil
}

func (d *Decoder) tokenToEvent(tok jsontext.Token) *Event {
	switch tok.Kind() {
	case '{':
		return &Event{Type: EventBeginObject}
	case '}':
		return &Event{Type: EventEndObject}
	case '[':
		return &Event{Type: EventBeginArray}
	case ']':
		return &Event{Type: EventEndArray}
	case '"':
		if d.state.ExpectsKey() {
			return &Event{Type: EventKey, Key: tok.String()}
		}
		return &Event{Type: EventString, String: tok.String()}
	case '0':
		text := tok.String()
		if value.IsFloatText(text) {
			return &Event{Type: EventFloat, Number: text}
		}
		return &Event{Type: EventInt, Number: text}
	case 't':
		return &Event{Type: EventBool, Bool: true}
	case 'f':
		return &Event{Type: EventBool, Bool: false}
	default:
		return &Event{Type: EventNull}
	}
}

// Current returns the event most recently returned by ReadEvent, or nil
// before the first event, at end of input and after an error.
func (d *Decoder) Current() *Event {
	return d.cur
}

// Depth returns the current nesting depth (0 = top level).
func (d *Decoder) Depth() int {
	return d.state.Depth()
}

// CurrentPath returns the current path (e.g., "", "key", "key[0]").
func (d *Decoder) CurrentPath() string {
	return d.state.CurrentPath()
}

// Offset returns the byte offset in the input just past the current event.
func (d *Decoder) Offset() int64 {
	return d.source.InputOffset()
}

// Reset discards all state and reads from r.
func (d *Decoder) Reset(r io.Reader) {
	d.source = newSource(r)
	d.state.Reset()
	d.cur = nil
}
