package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"
)

// Decode reads one JSON value from dec.
//
// If first is true the decoder is advanced one event before the value is
// inspected, and eof is returned with a nil error when the input is
// exhausted. eof is any sentinel the caller can tell apart from a decoded
// null, typically a dedicated *value.Node compared by pointer. If first is
// false the value starts at dec.Current().
//
// Object keys become symbols when keysAsSymbols or the WithKeysAsSymbols
// option is set and strings otherwise. When a key repeats, the later value replaces the earlier one
// in the earlier key's position.
//
// Decoding a container leaves its closing event current; nothing after the
// value is consumed.
func Decode(dec *stream.Decoder, first, keysAsSymbols bool, eof *value.Node, opts ...DecodeOption) (*value.Node, error) {
	do := newDecodeOpts(opts)
	if first {
		_, err := dec.ReadEvent()
		if err == io.EOF {
			return eof, nil
		}
		if err != nil {
			return nil, malformed(dec, "invalid JSON", err)
		}
	}
	ev := dec.Current()
	if ev == nil {
		return nil, malformed(dec, "no current token", nil)
	}
	node, err := decodeValue(dec, ev, keysAsSymbols || do.keysAsSymbols, do)
	if err != nil {
		return nil, err
	}
	if debug.Decode() {
		debug.Logf("decoded %v ending at offset %d\n", node, dec.Offset())
	}
	return node, nil
}

// frame is an open container on the decode stack.
type frame struct {
	node  *value.Node
	index map[string]int // key text to entry position, objects only
	key   *value.Node
}

func (f *frame) add(v *value.Node) {
	if f.node.Type == value.ArrayType {
		f.node.Values = append(f.node.Values, v)
		return
	}
	text, _ := f.key.KeyText()
	if i, ok := f.index[text]; ok {
		f.node.Values[i] = v
	} else {
		f.index[text] = len(f.node.Fields)
		f.node.Fields = append(f.node.Fields, f.key)
		f.node.Values = append(f.node.Values, v)
	}
	f.key = nil
}

func decodeValue(dec *stream.Decoder, ev *stream.Event, keysAsSymbols bool, do *decodeOpts) (*value.Node, error) {
	var stack []*frame
	for {
		var done *value.Node
		switch ev.Type {
		case stream.EventBeginObject, stream.EventBeginArray:
			if len(stack) >= do.maxDepth {
				return nil, malformed(dec, fmt.Sprintf("nesting deeper than %d", do.maxDepth), nil)
			}
			f := &frame{node: &value.Node{Type: value.ArrayType}}
			if ev.Type == stream.EventBeginObject {
				f.node.Type = value.ObjectType
				f.index = map[string]int{}
			}
			stack = append(stack, f)

		case stream.EventEndObject, stream.EventEndArray:
			want := value.ObjectType
			if ev.Type == stream.EventEndArray {
				want = value.ArrayType
			}
			if len(stack) == 0 || stack[len(stack)-1].node.Type != want || stack[len(stack)-1].key != nil {
				return nil, unexpected(dec, ev)
			}
			done = stack[len(stack)-1].node
			stack = stack[:len(stack)-1]

		case stream.EventKey:
			if len(stack) == 0 {
				return nil, unexpected(dec, ev)
			}
			top := stack[len(stack)-1]
			if top.node.Type != value.ObjectType || top.key != nil {
				return nil, unexpected(dec, ev)
			}
			if keysAsSymbols {
				top.key = value.Sym(ev.Key)
			} else {
				top.key = value.FromString(ev.Key)
			}

		case stream.EventString:
			done = value.FromString(ev.String)
		case stream.EventBool:
			done = value.FromBool(ev.Bool)
		case stream.EventNull:
			done = value.Null()
		case stream.EventInt, stream.EventFloat:
			n, err := value.ParseNumber(ev.Number)
			if err != nil {
				return nil, malformed(dec, "bad number", err)
			}
			done = n

		default:
			return nil, unexpected(dec, ev)
		}

		if done != nil {
			if len(stack) == 0 {
				return done, nil
			}
			top := stack[len(stack)-1]
			if top.node.Type == value.ObjectType && top.key == nil {
				return nil, unexpected(dec, ev)
			}
			top.add(done)
		}

		var err error
		ev, err = dec.ReadEvent()
		if err == io.EOF {
			return nil, malformed(dec, "unexpected end of input", nil)
		}
		if err != nil {
			return nil, malformed(dec, "invalid JSON", err)
		}
	}
}

func malformed(dec *stream.Decoder, msg string, err error) error {
	return &MalformedJSONError{
		Path:   value.DisplayPath(dec.CurrentPath()),
		Offset: dec.Offset(),
		Msg:    msg,
		Err:    err,
	}
}

func unexpected(dec *stream.Decoder, ev *stream.Event) error {
	return malformed(dec, "unexpected "+ev.Describe(), nil)
}

// DecodeAll reads whitespace separated JSON values until the input is
// exhausted.
func DecodeAll(dec *stream.Decoder, keysAsSymbols bool, opts ...DecodeOption) ([]*value.Node, error) {
	eof := &value.Node{Type: value.NullType}
	var res []*value.Node
	for {
		node, err := Decode(dec, true, keysAsSymbols, eof, opts...)
		if err != nil {
			return nil, err
		}
		if node == eof {
			return res, nil
		}
		res = append(res, node)
	}
}

// Unmarshal decodes data holding exactly one JSON value.
func Unmarshal(data []byte, opts ...DecodeOption) (*value.Node, error) {
	do := newDecodeOpts(opts)
	dec, err := stream.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	node, err := Decode(dec, true, do.keysAsSymbols, nil, opts...)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, malformed(dec, "empty input", nil)
	}
	_, err = dec.ReadEvent()
	switch {
	case err == io.EOF:
		return node, nil
	case err != nil:
		return nil, malformed(dec, "invalid JSON after value", err)
	default:
		return nil, malformed(dec, "unexpected data after value: "+dec.Current().Describe(), nil)
	}
}
