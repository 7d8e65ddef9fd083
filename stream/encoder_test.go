package stream

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"
)

func newTestEncoder(t *testing.T, opts ...StreamOption) (*Encoder, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	enc, err := NewEncoder(buf, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return enc, buf
}

func must(t *testing.T, errs ...error) {
	t.Helper()
	for _, err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestEncoderCompact(t *testing.T) {
	enc, buf := newTestEncoder(t)
	must(t,
		enc.BeginObject(),
		enc.WriteKey("a"),
		enc.BeginArray(),
		enc.WriteInt(1),
		enc.WriteFloat(2),
		enc.WriteString("x\"y"),
		enc.WriteBool(true),
		enc.WriteNull(),
		enc.EndArray(),
		enc.WriteKey("b"),
		enc.BeginObject(),
		enc.EndObject(),
		enc.WriteKey("c"),
		enc.BeginArray(),
		enc.EndArray(),
		enc.EndObject(),
	)
	expected := `{"a":[1,2.0,"x\"y",true,null],"b":{},"c":[]}`
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if enc.Offset() != int64(len(expected)) {
		t.Errorf("expected offset %d, got %d", len(expected), enc.Offset())
	}
	if enc.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", enc.Depth())
	}
}

func TestEncoderRootSeparator(t *testing.T) {
	enc, buf := newTestEncoder(t)
	must(t, enc.WriteInt(1), enc.WriteString("two"), enc.BeginArray(), enc.EndArray())
	expected := "1\n\"two\"\n[]"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestEncoderFloats(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{0.000001, "0.000001"},
		{123456.789, "123456.789"},
	}
	for _, tt := range tests {
		enc, buf := newTestEncoder(t)
		must(t, enc.WriteFloat(tt.in))
		if buf.String() != tt.expected {
			t.Errorf("WriteFloat(%v): expected %q, got %q", tt.in, tt.expected, buf.String())
		}
	}
}

func TestEncoderNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		enc, buf := newTestEncoder(t)
		err := enc.WriteFloat(f)
		var serr *Error
		if !errors.As(err, &serr) {
			t.Errorf("WriteFloat(%v): expected *Error, got %v", f, err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	}
}

func TestEncoderBigInt(t *testing.T) {
	enc, buf := newTestEncoder(t)
	i, _ := new(big.Int).SetString("-98765432109876543210987654321", 10)
	must(t, enc.WriteBigInt(i))
	if buf.String() != "-98765432109876543210987654321" {
		t.Errorf("unexpected output %q", buf.String())
	}
	if err := enc.WriteBigInt(nil); err == nil {
		t.Errorf("expected error for nil big integer")
	}
}

func TestEncoderMisuse(t *testing.T) {
	tests := []struct {
		name string
		run  func(e *Encoder) error
	}{
		{"key at top", func(e *Encoder) error { return e.WriteKey("a") }},
		{"key in array", func(e *Encoder) error {
			e.BeginArray()
			return e.WriteKey("a")
		}},
		{"value without key", func(e *Encoder) error {
			e.BeginObject()
			return e.WriteInt(1)
		}},
		{"key after key", func(e *Encoder) error {
			e.BeginObject()
			e.WriteKey("a")
			return e.WriteKey("b")
		}},
		{"end object without begin", func(e *Encoder) error { return e.EndObject() }},
		{"end array in object", func(e *Encoder) error {
			e.BeginObject()
			return e.EndArray()
		}},
		{"end object after key", func(e *Encoder) error {
			e.BeginObject()
			e.WriteKey("a")
			return e.EndObject()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, _ := newTestEncoder(t)
			err := tt.run(enc)
			var serr *Error
			if !errors.As(err, &serr) {
				t.Errorf("expected *Error, got %v", err)
			}
		})
	}
}

func TestEncoderEscapeHTML(t *testing.T) {
	enc, buf := newTestEncoder(t, WithEscapeHTML(true))
	must(t, enc.WriteString("<a&b>"))
	expected := `"\u003ca\u0026b\u003e"`
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}

	enc, buf = newTestEncoder(t)
	must(t, enc.WriteString("<a&b>"))
	if buf.String() != `"<a&b>"` {
		t.Errorf("expected unescaped output, got %q", buf.String())
	}
}

func TestEncoderInvalidUTF8(t *testing.T) {
	enc, _ := newTestEncoder(t)
	if err := enc.WriteString("\xff"); err == nil {
		t.Errorf("expected error for invalid UTF-8")
	}
}

func TestEncoderColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[EventType]func(string, ...any) string{
			EventKey: func(s string, _ ...any) string { return "<k>" + s + "</k>" },
			EventInt: func(s string, _ ...any) string { return "<i>" + s + "</i>" },
		},
	}
	enc, buf := newTestEncoder(t, WithColors(colors))
	must(t, enc.BeginObject(), enc.WriteKey("a"), enc.WriteInt(1), enc.WriteKey("b"), enc.WriteNull(), enc.EndObject())
	expected := `{<k>"a"</k>:<i>1</i>,<k>"b"</k>:null}`
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if NewColors().Get(EventString) == nil {
		t.Errorf("expected a string color")
	}
}

// recordingFormatter logs hook calls with the depth they see.
type recordingFormatter struct {
	calls *[]string
}

func (r recordingFormatter) rec(name string, w RawWriter) {
	*r.calls = append(*r.calls, name+"@"+string(rune('0'+w.Depth())))
}

func (r recordingFormatter) RootValueSeparator(w RawWriter) error {
	r.rec("root", w)
	return w.WriteRaw(" ")
}
func (r recordingFormatter) StartObject(w RawWriter) error {
	r.rec("{", w)
	return w.WriteRaw("{")
}
func (r recordingFormatter) BeforeObjectEntries(w RawWriter) error {
	r.rec("entries", w)
	return nil
}
func (r recordingFormatter) FieldValueSeparator(w RawWriter) error {
	r.rec(":", w)
	return w.WriteRaw(":")
}
func (r recordingFormatter) ObjectEntrySeparator(w RawWriter) error {
	r.rec(",", w)
	return w.WriteRaw(",")
}
func (r recordingFormatter) EndObject(w RawWriter, n int) error {
	r.rec("}"+string(rune('0'+n)), w)
	return w.WriteRaw("}")
}
func (r recordingFormatter) StartArray(w RawWriter) error {
	r.rec("[", w)
	return w.WriteRaw("[")
}
func (r recordingFormatter) BeforeArrayValues(w RawWriter) error {
	r.rec("values", w)
	return nil
}
func (r recordingFormatter) ArrayValueSeparator(w RawWriter) error {
	r.rec("sep", w)
	return w.WriteRaw(",")
}
func (r recordingFormatter) EndArray(w RawWriter, n int) error {
	r.rec("]"+string(rune('0'+n)), w)
	return w.WriteRaw("]")
}

func TestEncoderFormatterHooks(t *testing.T) {
	var calls []string
	enc, buf := newTestEncoder(t, WithFormatter(recordingFormatter{calls: &calls}))
	must(t,
		enc.BeginObject(),
		enc.WriteKey("a"),
		enc.BeginArray(),
		enc.WriteInt(1),
		enc.WriteInt(2),
		enc.EndArray(),
		enc.WriteKey("b"),
		enc.BeginArray(),
		enc.EndArray(),
		enc.EndObject(),
		enc.WriteNull(),
	)
	expected := "{@1 entries@1 :@1 [@2 values@2 sep@2 ]2@2 ,@1 :@1 [@2 ]0@2 }2@1 root@0"
	if got := strings.Join(calls, " "); got != expected {
		t.Errorf("expected hooks\n%s\ngot\n%s", expected, got)
	}
	if buf.String() != `{"a":[1,2],"b":[]} null` {
		t.Errorf("unexpected output %q", buf.String())
	}
}
