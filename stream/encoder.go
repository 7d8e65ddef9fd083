package stream

import (
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/signadot/jsonv/value"
)

// Encoder provides explicit stack management for streaming JSON encoding.
//
// The bytes between structural tokens are chosen by the configured
// Formatter; the encoder itself only writes keys, scalars and whatever the
// formatter hands back through WriteRaw. Output is not buffered: a failed
// call leaves what was already written in place.
type Encoder struct {
	writer  io.Writer
	state   *State
	opts    *streamOpts
	offset  int64
	roots   int
	scratch []byte
}

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer, opts ...StreamOption) (*Encoder, error) {
	so, err := buildOpts(opts)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		writer: w,
		state:  NewState(),
		opts:   so,
	}, nil
}

// Queryable State Methods

// Depth returns the current nesting depth (0 = top level).
func (e *Encoder) Depth() int {
	return e.state.Depth()
}

// CurrentPath returns the current path (e.g., "", "key", "key[0]").
func (e *Encoder) CurrentPath() string {
	return e.state.CurrentPath()
}

// IsInObject returns true if currently inside an object.
func (e *Encoder) IsInObject() bool {
	return e.state.IsInObject()
}

// IsInArray returns true if currently inside an array.
func (e *Encoder) IsInArray() bool {
	return e.state.IsInArray()
}

// Offset returns the byte offset in the output stream.
func (e *Encoder) Offset() int64 {
	return e.offset
}

// Formatter returns the formatter in use.
func (e *Encoder) Formatter() Formatter {
	return e.opts.formatter
}

// Structure Control Methods

// BeginObject begins an object.
func (e *Encoder) BeginObject() error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	if err := e.state.ProcessEvent(&Event{Type: EventBeginObject}); err != nil {
		return err
	}
	return e.opts.formatter.StartObject(e)
}

// EndObject ends an object.
func (e *Encoder) EndObject() error {
	if !e.state.IsInObject() {
		return &Error{Msg: "EndObject outside object at " + e.displayPath()}
	}
	if e.state.HasKey() {
		return &Error{Msg: "EndObject after key without value at " + e.displayPath()}
	}
	if err := e.opts.formatter.EndObject(e, e.state.Count()); err != nil {
		return err
	}
	return e.state.ProcessEvent(&Event{Type: EventEndObject})
}

// BeginArray begins an array.
func (e *Encoder) BeginArray() error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	if err := e.state.ProcessEvent(&Event{Type: EventBeginArray}); err != nil {
		return err
	}
	return e.opts.formatter.StartArray(e)
}

// EndArray ends an array.
func (e *Encoder) EndArray() error {
	if !e.state.IsInArray() {
		return &Error{Msg: "EndArray outside array at " + e.displayPath()}
	}
	if err := e.opts.formatter.EndArray(e, e.state.Count()); err != nil {
		return err
	}
	return e.state.ProcessEvent(&Event{Type: EventEndArray})
}

// Value Writing Methods

// WriteKey writes an object key and the separator which follows it.
func (e *Encoder) WriteKey(key string) error {
	if !e.state.IsInObject() {
		return &Error{Msg: "key " + strconv.Quote(key) + " outside object at " + e.displayPath()}
	}
	if e.state.HasKey() {
		return &Error{Msg: "key " + strconv.Quote(key) + " where value expected at " + e.displayPath()}
	}
	quoted, err := e.quote(key)
	if err != nil {
		return err
	}
	f := e.opts.formatter
	if e.state.Count() == 0 {
		if err := f.BeforeObjectEntries(e); err != nil {
			return err
		}
	} else if err := f.ObjectEntrySeparator(e); err != nil {
		return err
	}
	if err := e.writeToken(EventKey, quoted); err != nil {
		return err
	}
	if err := e.state.ProcessEvent(&Event{Type: EventKey, Key: key}); err != nil {
		return err
	}
	return f.FieldValueSeparator(e)
}

// WriteString writes a string value.
func (e *Encoder) WriteString(s string) error {
	quoted, err := e.quote(s)
	if err != nil {
		return err
	}
	return e.writeScalar(EventString, quoted)
}

// WriteInt writes an integer value.
func (e *Encoder) WriteInt(i int64) error {
	return e.writeScalar(EventInt, strconv.FormatInt(i, 10))
}

// WriteBigInt writes an integer value of any size.
func (e *Encoder) WriteBigInt(i *big.Int) error {
	if i == nil {
		return &Error{Msg: "nil big integer at " + e.displayPath()}
	}
	return e.writeScalar(EventInt, i.String())
}

// WriteFloat writes a float value. The text always reads back as a float:
// integral values get a ".0" suffix. NaN and infinities are rejected.
func (e *Encoder) WriteFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &Error{Msg: "unsupported float " + strconv.FormatFloat(f, 'g', -1, 64) + " at " + e.displayPath()}
	}
	return e.writeScalar(EventFloat, string(appendFloat(e.scratch[:0], f)))
}

// WriteBool writes a boolean value.
func (e *Encoder) WriteBool(b bool) error {
	return e.writeScalar(EventBool, strconv.FormatBool(b))
}

// WriteNull writes a null value.
func (e *Encoder) WriteNull() error {
	return e.writeScalar(EventNull, "null")
}

// WriteRaw writes s verbatim. Formatters use it to emit whitespace and
// closing brackets; it does not change the structural state.
func (e *Encoder) WriteRaw(s string) error {
	n, err := io.WriteString(e.writer, s)
	e.offset += int64(n)
	return err
}

// Flush flushes the underlying writer if it supports flushing.
func (e *Encoder) Flush() error {
	if f, ok := e.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Reset discards all state and writes to w.
func (e *Encoder) Reset(w io.Writer) {
	e.writer = w
	e.state.Reset()
	e.offset = 0
	e.roots = 0
}

func (e *Encoder) writeScalar(t EventType, text string) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	if err := e.writeToken(t, text); err != nil {
		return err
	}
	return e.state.ProcessEvent(&Event{Type: t})
}

// beforeValue validates that a value may start here and writes the join
// point preceding it.
func (e *Encoder) beforeValue() error {
	f := e.opts.formatter
	switch {
	case e.state.Depth() == 0:
		e.roots++
		if e.roots > 1 {
			return f.RootValueSeparator(e)
		}
		return nil
	case e.state.IsInObject():
		if !e.state.HasKey() {
			return &Error{Msg: "value where key expected at " + e.displayPath()}
		}
		return nil
	case e.state.Count() == 0:
		return f.BeforeArrayValues(e)
	default:
		return f.ArrayValueSeparator(e)
	}
}

func (e *Encoder) writeToken(t EventType, text string) error {
	if e.opts.colors != nil {
		text = e.opts.colors.Color(t, text)
	}
	return e.WriteRaw(text)
}

var htmlEscaper = strings.NewReplacer("<", `\u003c`, ">", `\u003e`, "&", `\u0026`)

func (e *Encoder) quote(s string) (string, error) {
	b, err := jsontext.AppendQuote(e.scratch[:0], s)
	if err != nil {
		return "", &Error{Msg: "cannot quote string at " + e.displayPath(), Err: err}
	}
	e.scratch = b
	if e.opts.escapeHTML {
		return htmlEscaper.Replace(string(b)), nil
	}
	return string(b), nil
}

func (e *Encoder) displayPath() string {
	return value.DisplayPath(e.state.CurrentPath())
}

// appendFloat formats f the way encoding/json does, then marks integral
// values as floats.
func appendFloat(b []byte, f float64) []byte {
	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	start := len(b)
	b = strconv.AppendFloat(b, f, fmt, -1, 64)
	if fmt == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n-start >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
		return b
	}
	if !strings.ContainsAny(string(b[start:]), ".eE") {
		b = append(b, ".0"...)
	}
	return b
}
