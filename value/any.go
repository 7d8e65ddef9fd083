package value

import (
	"fmt"
	"math/big"
)

// FromAny converts a host value to a node tree using [Inspect]. Lazy
// sequences are consumed. Existing *Node values are shared, not copied.
func FromAny(v any) (*Node, error) {
	return fromAny("", v)
}

func fromAny(path string, v any) (*Node, error) {
	h, ok := Inspect(v)
	if !ok {
		return nil, unsupported(DisplayPath(path), v)
	}
	if h.Node != nil {
		return h.Node, nil
	}
	switch h.Type {
	case ObjectType:
		res := &Node{Type: ObjectType}
		for k, v := range h.Entries {
			kn, err := KeyNode(k)
			if err != nil {
				return nil, unsupported(DisplayPath(path)+" key", k)
			}
			text, _ := kn.KeyText()
			vn, err := fromAny(FieldPath(path, text), v)
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, kn)
			res.Values = append(res.Values, vn)
		}
		return res, nil
	case ArrayType:
		res := &Node{Type: ArrayType}
		i := 0
		for v := range h.Elements {
			vn, err := fromAny(IndexPath(path, i), v)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, vn)
			i++
		}
		return res, nil
	}
	return nil, unsupported(DisplayPath(path), v)
}

// ToAny converts a node tree to plain Go values: objects become
// map[string]any, or map[Symbol]any when every key is a symbol; arrays become
// []any; integers become int64 when they fit and *big.Int otherwise.
func ToAny(node *Node) (any, error) {
	return toAny("", node)
}

func toAny(path string, node *Node) (any, error) {
	if node == nil {
		return nil, unsupported(DisplayPath(path), node)
	}
	switch node.Type {
	case NullType:
		return nil, nil
	case BoolType:
		return node.Bool, nil
	case StringType:
		return node.String, nil
	case SymbolType:
		return node.Symbol, nil
	case FloatType:
		return node.Float, nil
	case IntType:
		if node.Int == nil {
			return nil, &UnsupportedError{Path: DisplayPath(path), Desc: "integer node without value"}
		}
		if node.Int.IsInt64() {
			return node.Int.Int64(), nil
		}
		return new(big.Int).Set(node.Int), nil
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toAny(IndexPath(path, i), elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ObjectType:
		return objectToAny(path, node)
	}
	return nil, &UnsupportedError{Path: DisplayPath(path), Desc: fmt.Sprintf("node of type %d", int(node.Type))}
}

func objectToAny(path string, node *Node) (any, error) {
	if len(node.Fields) != len(node.Values) {
		return nil, &UnsupportedError{
			Path: DisplayPath(path),
			Desc: fmt.Sprintf("object with %d fields and %d values", len(node.Fields), len(node.Values)),
		}
	}
	allSyms := len(node.Fields) > 0
	for _, f := range node.Fields {
		if f == nil || f.Type != SymbolType {
			allSyms = false
			break
		}
	}
	if allSyms {
		res := make(map[Symbol]any, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toAny(FieldPath(path, f.Symbol.Name), node.Values[i])
			if err != nil {
				return nil, err
			}
			res[f.Symbol] = v
		}
		return res, nil
	}
	res := make(map[string]any, len(node.Fields))
	for i, f := range node.Fields {
		text, ok := f.KeyText()
		if !ok {
			return nil, unsupported(DisplayPath(path)+" key", f)
		}
		v, err := toAny(FieldPath(path, text), node.Values[i])
		if err != nil {
			return nil, err
		}
		res[text] = v
	}
	return res, nil
}
