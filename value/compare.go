package value

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	return compare(a, b, false)
}

// Equal reports whether a and b are structurally identical, key types
// included.
func Equal(a, b *Node) bool {
	return compare(a, b, false) == 0
}

// EqualKeysNormalized is like Equal but treats object keys as equal when
// their key text is equal, so a symbol key :a matches the string key "a".
// Only keys are normalized: a symbol value still differs from a string.
func EqualKeysNormalized(a, b *Node) bool {
	return compare(a, b, true) == 0
}

func compare(a, b *Node, normKeys bool) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType:
		return compareInts(a, b)
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.String, b.String)
	case SymbolType:
		if c := strings.Compare(a.Symbol.Namespace, b.Symbol.Namespace); c != 0 {
			return c
		}
		return strings.Compare(a.Symbol.Name, b.Symbol.Name)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b, normKeys)
	case ObjectType:
		return compareObjects(a, b, normKeys)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Float < String < Symbol < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case IntType:
		return 3
	case FloatType:
		return 4
	case StringType:
		return 5
	case SymbolType:
		return 6
	case ArrayType:
		return 7
	case ObjectType:
		return 8
	}
	return 100
}

func compareInts(a, b *Node) int {
	switch {
	case a.Int == nil && b.Int == nil:
		return 0
	case a.Int == nil:
		return -1
	case b.Int == nil:
		return 1
	}
	return a.Int.Cmp(b.Int)
}

func compareArrays(a, b *Node, normKeys bool) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := range min(lenA, lenB) {
		if c := compare(a.Values[i], b.Values[i], normKeys); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node, normKeys bool) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	for i := range min(lenA, lenB) {
		if c := compareKeys(a.Fields[i], b.Fields[i], normKeys); c != 0 {
			return c
		}
		if i >= len(a.Values) || i >= len(b.Values) {
			return cmp.Compare(len(a.Values), len(b.Values))
		}
		if c := compare(a.Values[i], b.Values[i], normKeys); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareKeys(a, b *Node, normKeys bool) int {
	if !normKeys || a == nil || b == nil {
		return compare(a, b, normKeys)
	}
	textA, okA := a.KeyText()
	textB, okB := b.KeyText()
	if !okA || !okB {
		return compare(a, b, normKeys)
	}
	return strings.Compare(textA, textB)
}
