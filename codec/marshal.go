package codec

import (
	"bytes"

	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"
)

// Marshal encodes node into a new buffer, so nothing is returned on error.
func Marshal(node *value.Node, opts ...stream.StreamOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc, err := stream.NewEncoder(buf, opts...)
	if err != nil {
		return nil, err
	}
	if err := Encode(enc, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalAny is Marshal for host values; see EncodeAny.
func MarshalAny(v any, opts ...stream.StreamOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc, err := stream.NewEncoder(buf, opts...)
	if err != nil {
		return nil, err
	}
	if err := EncodeAny(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustMarshal is like Marshal but panics on error. It is meant for nodes
// known to be well formed, such as those returned by Decode.
func MustMarshal(node *value.Node, opts ...stream.StreamOption) string {
	d, err := Marshal(node, opts...)
	if err != nil {
		panic(err)
	}
	return string(d)
}
