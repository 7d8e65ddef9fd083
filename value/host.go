package value

import (
	"cmp"
	"encoding/json"
	"iter"
	"math/big"
	"reflect"
	"slices"
)

// MapLike is implemented by host types which present key/value entries in a
// natural order. Keys must be acceptable to [KeyNode].
type MapLike interface {
	Entries() iter.Seq2[any, any]
}

// Sequence is implemented by host types which present an ordered sequence of
// elements. The sequence may be lazy; it is consumed once.
type Sequence interface {
	Elements() iter.Seq[any]
}

// Host is the capability view of a host value produced by [Inspect].
//
// Exactly one of Node, Entries and Elements is set. Node holds either a
// scalar converted from a Go value or an existing *Node passed through.
// Entries is set for map-like values (Type ObjectType) and Elements for
// sequence-like values (Type ArrayType).
type Host struct {
	Type     Type
	Node     *Node
	Entries  iter.Seq2[any, any]
	Elements iter.Seq[any]
}

// Inspect classifies v as map-like, sequence-like or scalar-like. ok is false
// when v has none of those capabilities.
//
// Go maps are iterated in ascending key text order. Slices, arrays, receive
// channels, iter.Seq and iter.Seq2 functions are recognized by their reflected
// shape, so named and generic instantiations work without registration.
// Nil pointers, interfaces, channels and iterators inspect as null, as do
// MapLike and Sequence values returning a nil iterator. Other pointers are
// followed.
func Inspect(v any) (h Host, ok bool) {
	switch x := v.(type) {
	case nil:
		return scalar(Null()), true
	case *Node:
		if x == nil {
			return scalar(Null()), true
		}
		return Host{Type: x.Type, Node: x}, true
	case bool:
		return scalar(FromBool(x)), true
	case string:
		return scalar(FromString(x)), true
	case Symbol:
		return scalar(FromSymbol(x)), true
	case *big.Int:
		if x == nil {
			return scalar(Null()), true
		}
		return scalar(FromBigInt(x)), true
	case big.Int:
		return scalar(FromBigInt(&x)), true
	case json.Number:
		n, err := ParseNumber(string(x))
		if err != nil {
			return Host{}, false
		}
		return scalar(n), true
	case MapLike:
		return entriesHost(x.Entries()), true
	case Sequence:
		return elementsHost(x.Elements()), true
	case iter.Seq2[any, any]:
		return entriesHost(x), true
	case iter.Seq[any]:
		return elementsHost(x), true
	}
	return inspectReflect(reflect.ValueOf(v))
}

func scalar(n *Node) Host {
	return Host{Type: n.Type, Node: n}
}

func entriesHost(seq iter.Seq2[any, any]) Host {
	if seq == nil {
		return scalar(Null())
	}
	return Host{Type: ObjectType, Entries: seq}
}

func elementsHost(seq iter.Seq[any]) Host {
	if seq == nil {
		return scalar(Null())
	}
	return Host{Type: ArrayType, Elements: seq}
}

func inspectReflect(rv reflect.Value) (Host, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return scalar(Null()), true
		}
		return Inspect(rv.Elem().Interface())
	case reflect.Bool:
		return scalar(FromBool(rv.Bool())), true
	case reflect.String:
		return scalar(FromString(rv.String())), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar(FromInt(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalar(FromBigInt(new(big.Int).SetUint64(rv.Uint()))), true
	case reflect.Float32, reflect.Float64:
		return scalar(FromFloat(rv.Float())), true
	case reflect.Map:
		return Host{Type: ObjectType, Entries: sortedEntries(rv)}, true
	case reflect.Slice, reflect.Array:
		return Host{Type: ArrayType, Elements: indexedElements(rv)}, true
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			return Host{}, false
		}
		if rv.IsNil() {
			return scalar(Null()), true
		}
		return Host{Type: ArrayType, Elements: reflectedElements(rv)}, true
	case reflect.Func:
		t := rv.Type()
		if rv.IsNil() {
			if t.CanSeq() || t.CanSeq2() {
				return scalar(Null()), true
			}
			return Host{}, false
		}
		if t.CanSeq2() {
			return Host{Type: ObjectType, Entries: reflectedEntries(rv)}, true
		}
		if t.CanSeq() {
			return Host{Type: ArrayType, Elements: reflectedElements(rv)}, true
		}
	}
	return Host{}, false
}

func indexedElements(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func reflectedElements(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range rv.Seq() {
			if !yield(v.Interface()) {
				return
			}
		}
	}
}

func reflectedEntries(rv reflect.Value) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range rv.Seq2() {
			if !yield(k.Interface(), v.Interface()) {
				return
			}
		}
	}
}

type hostEntry struct {
	text string
	key  any
	val  any
}

func sortedEntries(rv reflect.Value) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		entries := make([]hostEntry, 0, rv.Len())
		mi := rv.MapRange()
		for mi.Next() {
			k := mi.Key().Interface()
			text := ""
			if kn, err := KeyNode(k); err == nil {
				text, _ = kn.KeyText()
			}
			entries = append(entries, hostEntry{text: text, key: k, val: mi.Value().Interface()})
		}
		slices.SortFunc(entries, func(a, b hostEntry) int {
			return cmp.Compare(a.text, b.text)
		})
		for i := range entries {
			if !yield(entries[i].key, entries[i].val) {
				return
			}
		}
	}
}

// KeyNode converts a host map key to a key node. Strings, symbols, Go
// integers and *big.Int are accepted, including named types whose underlying
// kind is a string or integer.
func KeyNode(k any) (*Node, error) {
	switch x := k.(type) {
	case string:
		return FromString(x), nil
	case Symbol:
		return FromSymbol(x), nil
	case *big.Int:
		if x != nil {
			return FromBigInt(x), nil
		}
	case *Node:
		if x != nil && x.Type.IsKey() {
			return x, nil
		}
	}
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromBigInt(new(big.Int).SetUint64(rv.Uint())), nil
	}
	return nil, unsupported("", k)
}
