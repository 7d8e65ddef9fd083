package value

import (
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Node is one value of the tree. Which fields are meaningful depends on Type:
// objects use Fields (keys) and Values in parallel, arrays use Values, and
// scalars use the field named after their type.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String string
	Symbol Symbol
	Bool   bool
	Int    *big.Int
	Float  float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type: IntType,
		Int:  big.NewInt(v),
	}
}

// FromBigInt returns an integer node holding a copy of v.
func FromBigInt(v *big.Int) *Node {
	return &Node{
		Type: IntType,
		Int:  new(big.Int).Set(v),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:  FloatType,
		Float: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSymbol(s Symbol) *Node {
	return &Node{
		Type:   SymbolType,
		Symbol: s,
	}
}

// Sym returns an unqualified symbol node.
func Sym(name string) *Node {
	return FromSymbol(Symbol{Name: name})
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vs)),
	}
	copy(res.Values, vs)
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object in the order given. Keys are not checked for
// uniqueness.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object with string keys in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, m[key])
	}
	return res
}

// Get returns the value of the first field whose key text is field, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		text, ok := f.KeyText()
		if ok && text == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of entries of an object or elements of an array.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

// KeyText returns the text a key node is written as: strings verbatim,
// symbols by bare name and integers in decimal. ok is false for nodes which
// cannot be keys.
func (y *Node) KeyText() (text string, ok bool) {
	if y == nil {
		return "", false
	}
	switch y.Type {
	case StringType:
		return y.String, true
	case SymbolType:
		return y.Symbol.Name, true
	case IntType:
		if y.Int == nil {
			return "", false
		}
		return y.Int.String(), true
	default:
		return "", false
	}
}

// Format renders a compact, JSON-like form of the tree for logs and test
// failures. Symbols are shown with a leading colon.
func (y *Node) Format(s fmt.State, verb rune) {
	var b strings.Builder
	y.sprint(&b)
	fmt.Fprint(s, b.String())
}

func (y *Node) sprint(b *strings.Builder) {
	if y == nil {
		b.WriteString("<nil>")
		return
	}
	switch y.Type {
	case NullType:
		b.WriteString("null")
	case BoolType:
		b.WriteString(strconv.FormatBool(y.Bool))
	case IntType:
		if y.Int == nil {
			b.WriteString("<nil int>")
			return
		}
		b.WriteString(y.Int.String())
	case FloatType:
		b.WriteString(strconv.FormatFloat(y.Float, 'g', -1, 64))
	case StringType:
		b.WriteString(strconv.Quote(y.String))
	case SymbolType:
		b.WriteString(":" + y.Symbol.String())
	case ArrayType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			v.sprint(b)
		}
		b.WriteByte(']')
	case ObjectType:
		b.WriteByte('{')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			if i < len(y.Fields) {
				y.Fields[i].sprint(b)
			}
			b.WriteByte(':')
			v.sprint(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("<" + y.Type.String() + ">")
	}
}
