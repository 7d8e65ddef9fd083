package format

import (
	"fmt"
	"strings"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/stream"
)

// Formatter is an immutable stream.Formatter. Indentation is derived from
// the depth reported by the writer, so a Formatter holds no per-encoder
// state and may be shared.
type Formatter struct {
	cfg    config
	indent string
}

var _ stream.Formatter = (*Formatter)(nil)

var (
	// Default indents objects and arrays by two spaces.
	Default = MustNew()

	// CompactFormatter writes no insignificant whitespace.
	CompactFormatter = MustNew(Compact())
)

// New builds a Formatter. With no options the result indents objects and
// arrays by two spaces and separates keys from values with ": ".
func New(opts ...Option) (*Formatter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return build(*cfg)
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// With returns a new Formatter with opts applied on top of f's
// configuration.
func (f *Formatter) With(opts ...Option) (*Formatter, error) {
	cfg := f.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(cfg)
}

func build(cfg config) (*Formatter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	indent := "  "
	switch {
	case cfg.width != nil:
		indent = strings.Repeat(" ", *cfg.width)
	case cfg.indentString != nil:
		indent = *cfg.indentString
	}
	if debug.Format() {
		debug.Logf("format: indent=%q line-break=%q objects=%t arrays=%t compact=%t\n",
			indent, cfg.lineBreak, cfg.indentObjects, cfg.indentArrays, cfg.compact)
	}
	return &Formatter{cfg: cfg, indent: indent}, nil
}

func (c *config) validate() error {
	if c.width != nil && *c.width < 0 {
		return &InvalidConfigurationError{
			Option: "Indent",
			Msg:    fmt.Sprintf("negative indentation width %d", *c.width),
		}
	}
	if c.width != nil && c.indentString != nil {
		return &InvalidConfigurationError{
			Option: "IndentString",
			Msg:    "indentation width and indentation string are mutually exclusive",
		}
	}
	if c.indentString != nil && !isWhitespace(*c.indentString) {
		return &InvalidConfigurationError{
			Option: "IndentString",
			Msg:    fmt.Sprintf("%q is not whitespace", *c.indentString),
		}
	}
	if c.lineBreak == "" {
		return &InvalidConfigurationError{
			Option: "LineBreak",
			Msg:    "empty line break",
		}
	}
	if !isWhitespace(c.lineBreak) {
		return &InvalidConfigurationError{
			Option: "LineBreak",
			Msg:    fmt.Sprintf("%q is not whitespace", c.lineBreak),
		}
	}
	return nil
}

// isWhitespace reports whether s consists of JSON insignificant whitespace.
func isWhitespace(s string) bool {
	return strings.Trim(s, " \t\r\n") == ""
}

// IndentUnit returns the indentation written per nesting level.
func (f *Formatter) IndentUnit() string { return f.indent }

// LineBreakString returns the configured line break.
func (f *Formatter) LineBreakString() string { return f.cfg.lineBreak }

func (f *Formatter) IsCompact() bool { return f.cfg.compact }

func (f *Formatter) writeNL(w stream.RawWriter, depth int) error {
	if depth < 0 {
		depth = 0
	}
	return w.WriteRaw(f.cfg.lineBreak + strings.Repeat(f.indent, depth))
}

func (f *Formatter) RootValueSeparator(w stream.RawWriter) error {
	return w.WriteRaw(f.cfg.lineBreak)
}

func (f *Formatter) StartObject(w stream.RawWriter) error {
	return w.WriteRaw("{")
}

func (f *Formatter) BeforeObjectEntries(w stream.RawWriter) error {
	if !f.cfg.indentObjects {
		return nil
	}
	return f.writeNL(w, w.Depth())
}

func (f *Formatter) FieldValueSeparator(w stream.RawWriter) error {
	if f.cfg.fieldValueSeparator != nil {
		return w.WriteRaw(*f.cfg.fieldValueSeparator)
	}
	if f.cfg.compact {
		return w.WriteRaw(":")
	}
	return w.WriteRaw(": ")
}

func (f *Formatter) ObjectEntrySeparator(w stream.RawWriter) error {
	if err := w.WriteRaw(","); err != nil {
		return err
	}
	if !f.cfg.indentObjects {
		return nil
	}
	return f.writeNL(w, w.Depth())
}

func (f *Formatter) EndObject(w stream.RawWriter, n int) error {
	if f.cfg.indentObjects && n > 0 {
		if err := f.writeNL(w, w.Depth()-1); err != nil {
			return err
		}
	}
	return w.WriteRaw("}")
}

func (f *Formatter) StartArray(w stream.RawWriter) error {
	return w.WriteRaw("[")
}

func (f *Formatter) BeforeArrayValues(w stream.RawWriter) error {
	if f.cfg.beforeArrayValues != nil {
		return w.WriteRaw(*f.cfg.beforeArrayValues)
	}
	if !f.cfg.indentArrays {
		return nil
	}
	return f.writeNL(w, w.Depth())
}

func (f *Formatter) ArrayValueSeparator(w stream.RawWriter) error {
	if err := w.WriteRaw(","); err != nil {
		return err
	}
	if !f.cfg.indentArrays || f.cfg.beforeArrayValues != nil {
		return nil
	}
	return f.writeNL(w, w.Depth())
}

func (f *Formatter) EndArray(w stream.RawWriter, n int) error {
	if f.cfg.afterArrayValues != nil {
		return w.WriteRaw(*f.cfg.afterArrayValues + "]")
	}
	if f.cfg.indentArrays && n > 0 {
		if err := f.writeNL(w, w.Depth()-1); err != nil {
			return err
		}
	}
	return w.WriteRaw("]")
}
