package value

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"google.golang.org/protobuf/types/known/structpb"
)

// FromStructpb converts a protobuf well-known JSON value to a node. Numbers
// which are integral and within the float64 exact range become integers;
// other numbers become floats. Struct fields are sorted by name.
func FromStructpb(v *structpb.Value) (*Node, error) {
	return fromStructpb("", v)
}

func fromStructpb(path string, v *structpb.Value) (*Node, error) {
	if v == nil {
		return Null(), nil
	}
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return Null(), nil
	case *structpb.Value_BoolValue:
		return FromBool(k.BoolValue), nil
	case *structpb.Value_StringValue:
		return FromString(k.StringValue), nil
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			return FromInt(int64(f)), nil
		}
		return FromFloat(f), nil
	case *structpb.Value_ListValue:
		vals := k.ListValue.GetValues()
		res := &Node{Type: ArrayType, Values: make([]*Node, len(vals))}
		for i, elt := range vals {
			n, err := fromStructpb(IndexPath(path, i), elt)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		res := &Node{Type: ObjectType}
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			n, err := fromStructpb(FieldPath(path, name), fields[name])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, FromString(name))
			res.Values = append(res.Values, n)
		}
		return res, nil
	default:
		return nil, unsupported(DisplayPath(path), v)
	}
}

// ToStructpb converts a node to a protobuf well-known JSON value. Integers
// are converted to float64 and may lose precision; symbols become strings.
func ToStructpb(node *Node) (*structpb.Value, error) {
	return toStructpb("", node)
}

func toStructpb(path string, node *Node) (*structpb.Value, error) {
	if node == nil {
		return nil, unsupported(DisplayPath(path), node)
	}
	switch node.Type {
	case NullType:
		return structpb.NewNullValue(), nil
	case BoolType:
		return structpb.NewBoolValue(node.Bool), nil
	case StringType:
		return structpb.NewStringValue(node.String), nil
	case SymbolType:
		return structpb.NewStringValue(node.Symbol.Name), nil
	case FloatType:
		return structpb.NewNumberValue(node.Float), nil
	case IntType:
		if node.Int == nil {
			return nil, &UnsupportedError{Path: DisplayPath(path), Desc: "integer node without value"}
		}
		f, _ := node.Int.Float64()
		return structpb.NewNumberValue(f), nil
	case ArrayType:
		list := &structpb.ListValue{Values: make([]*structpb.Value, len(node.Values))}
		for i, elt := range node.Values {
			v, err := toStructpb(IndexPath(path, i), elt)
			if err != nil {
				return nil, err
			}
			list.Values[i] = v
		}
		return structpb.NewListValue(list), nil
	case ObjectType:
		if len(node.Fields) != len(node.Values) {
			return nil, &UnsupportedError{
				Path: DisplayPath(path),
				Desc: fmt.Sprintf("object with %d fields and %d values", len(node.Fields), len(node.Values)),
			}
		}
		st := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(node.Fields))}
		for i, f := range node.Fields {
			text, ok := f.KeyText()
			if !ok {
				return nil, unsupported(DisplayPath(path)+" key", f)
			}
			v, err := toStructpb(FieldPath(path, text), node.Values[i])
			if err != nil {
				return nil, err
			}
			st.Fields[text] = v
		}
		return structpb.NewStructValue(st), nil
	}
	return nil, &UnsupportedError{Path: DisplayPath(path), Desc: fmt.Sprintf("node of type %d", int(node.Type))}
}
