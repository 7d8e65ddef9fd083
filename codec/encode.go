package codec

import (
	"fmt"
	"math"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"
)

// Encode writes node to enc depth first. Object keys are written as their
// key text: symbol keys by bare name, integer keys in decimal. Symbol values
// are written as strings of their bare name.
//
// Encode never modifies node. On error, output already written to enc is
// left in place; use Marshal to encode into a buffer first.
func Encode(enc *stream.Encoder, node *value.Node) error {
	if debug.Encode() {
		debug.Logf("encode %v at depth %d\n", node, enc.Depth())
	}
	return encode(enc, "", node)
}

func encode(enc *stream.Encoder, path string, node *value.Node) error {
	if node == nil {
		return unsupportedNode(path, "nil node")
	}
	switch node.Type {
	case value.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return unsupportedNode(path, fmt.Sprintf("object with %d fields and %d values", len(node.Fields), len(node.Values)))
		}
		if err := enc.BeginObject(); err != nil {
			return err
		}
		for i, field := range node.Fields {
			key, ok := field.KeyText()
			if !ok {
				return &UnsupportedValueError{
					Path: value.DisplayPath(path),
					Desc: fmt.Sprintf("key %v", field),
				}
			}
			if err := enc.WriteKey(key); err != nil {
				return err
			}
			if err := encode(enc, value.FieldPath(path, key), node.Values[i]); err != nil {
				return err
			}
		}
		return enc.EndObject()

	case value.ArrayType:
		if err := enc.BeginArray(); err != nil {
			return err
		}
		for i, elt := range node.Values {
			if err := encode(enc, value.IndexPath(path, i), elt); err != nil {
				return err
			}
		}
		return enc.EndArray()

	case value.StringType:
		return enc.WriteString(node.String)
	case value.SymbolType:
		return enc.WriteString(node.Symbol.Name)
	case value.BoolType:
		return enc.WriteBool(node.Bool)
	case value.NullType:
		return enc.WriteNull()
	case value.IntType:
		if node.Int == nil {
			return unsupportedNode(path, "integer node without value")
		}
		if node.Int.IsInt64() {
			return enc.WriteInt(node.Int.Int64())
		}
		return enc.WriteBigInt(node.Int)
	case value.FloatType:
		if math.IsNaN(node.Float) || math.IsInf(node.Float, 0) {
			return unsupportedNode(path, fmt.Sprintf("float %v", node.Float))
		}
		return enc.WriteFloat(node.Float)
	default:
		return unsupportedNode(path, fmt.Sprintf("node of type %d", int(node.Type)))
	}
}

func unsupportedNode(path, desc string) error {
	return &UnsupportedValueError{Path: value.DisplayPath(path), Desc: desc}
}
