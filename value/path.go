package value

import (
	"strconv"
	"strings"
	"unicode"
)

// FieldPath appends an object field segment to a path such as "a.b[0]".
// The root path is "". Fields which are not plain identifiers are quoted.
func FieldPath(parent, field string) string {
	seg := field
	if quoteField(field) {
		seg = strconv.Quote(field)
	}
	if parent == "" {
		return seg
	}
	return parent + "." + seg
}

// IndexPath appends an array index segment to a path.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// DisplayPath returns p, or "$" for the root path.
func DisplayPath(p string) string {
	if p == "" {
		return "$"
	}
	return p
}

func quoteField(f string) bool {
	if f == "" {
		return true
	}
	return strings.IndexFunc(f, func(r rune) bool {
		return !(r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r))
	}) != -1
}
