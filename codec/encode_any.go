package codec

import (
	"errors"
	"fmt"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"
)

// EncodeAny writes a host value to enc, classifying it by capability with
// value.Inspect: map-like values become objects, sequence-like values become
// arrays and Go scalars become JSON scalars. *value.Node values anywhere in
// the tree are written with Encode.
//
// Lazy sequences (iter.Seq functions, channels) are consumed as they are
// written. A value with none of the capabilities fails with an
// *UnsupportedValueError describing it.
func EncodeAny(enc *stream.Encoder, v any) error {
	if debug.Encode() {
		debug.Logf("encode host value %T at depth %d\n", v, enc.Depth())
	}
	return encodeAny(enc, "", v)
}

func encodeAny(enc *stream.Encoder, path string, v any) error {
	h, ok := value.Inspect(v)
	if !ok {
		return &UnsupportedValueError{
			Path: value.DisplayPath(path),
			Desc: fmt.Sprintf("%#v", v),
		}
	}
	if h.Node != nil {
		return encode(enc, path, h.Node)
	}
	switch h.Type {
	case value.ObjectType:
		if err := enc.BeginObject(); err != nil {
			return err
		}
		var err error
		for k, v := range h.Entries {
			var key *value.Node
			key, err = value.KeyNode(k)
			if err != nil {
				err = keyError(path, k, err)
				break
			}
			text, _ := key.KeyText()
			if err = enc.WriteKey(text); err != nil {
				break
			}
			if err = encodeAny(enc, value.FieldPath(path, text), v); err != nil {
				break
			}
		}
		if err != nil {
			return err
		}
		return enc.EndObject()

	case value.ArrayType:
		if err := enc.BeginArray(); err != nil {
			return err
		}
		var err error
		i := 0
		for v := range h.Elements {
			if err = encodeAny(enc, value.IndexPath(path, i), v); err != nil {
				break
			}
			i++
		}
		if err != nil {
			return err
		}
		return enc.EndArray()
	}
	return &UnsupportedValueError{Path: value.DisplayPath(path), Desc: fmt.Sprintf("%#v", v)}
}

func keyError(path string, k any, err error) error {
	uerr := &UnsupportedValueError{
		Path: value.DisplayPath(path),
		Desc: fmt.Sprintf("key %#v", k),
	}
	var verr *value.UnsupportedError
	if errors.As(err, &verr) {
		uerr.Err = verr
	}
	return uerr
}
