// Package format provides the structural formatter used to lay out JSON
// written by a stream.Encoder.
//
// # Usage
//
//	f, err := format.New(format.Indent(4), format.IndentArrays(false))
//	if err != nil {
//	    return err
//	}
//	enc, err := stream.NewEncoder(w, stream.WithFormatter(f))
//
// A Formatter fills four join points: the text after "[" of an array, the
// text before its "]", the separator between an object key and its value,
// and the indentation written at each nesting level. Each may be overridden
// independently; anything not overridden falls back to the compact or
// indented default. Configuration errors are reported by New, never while
// writing.
//
// # Related Packages
//
//   - github.com/signadot/jsonv/stream - the encoder consulting the formatter
//   - github.com/signadot/jsonv/profile - formatter settings from config files
package format
