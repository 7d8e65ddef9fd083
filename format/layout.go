package format

import (
	"errors"
	"fmt"
)

// Layout names a built-in formatter.
type Layout int

const (
	PrettyLayout Layout = iota
	CompactLayout
)

var ErrBadLayout = errors.New("bad layout")

func ParseLayout(v string) (Layout, error) {
	l, ok := map[string]Layout{
		"p":       PrettyLayout,
		"pretty":  PrettyLayout,
		"c":       CompactLayout,
		"compact": CompactLayout,
	}[v]
	if ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadLayout, v)
}

func (l Layout) String() string {
	d, err := l.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (l Layout) MarshalText() ([]byte, error) {
	switch l {
	case PrettyLayout:
		return []byte("pretty"), nil
	case CompactLayout:
		return []byte("compact"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a layout>", l)
	}
}

func (l *Layout) UnmarshalText(d []byte) error {
	pl, err := ParseLayout(string(d))
	if err != nil {
		return err
	}
	*l = pl
	return nil
}

// Options returns the formatter options selecting the layout, to be
// extended by further options.
func (l Layout) Options() []Option {
	if l == CompactLayout {
		return []Option{Compact()}
	}
	return nil
}

// Formatter returns the shared built-in formatter for the layout.
func (l Layout) Formatter() *Formatter {
	if l == CompactLayout {
		return CompactFormatter
	}
	return Default
}
