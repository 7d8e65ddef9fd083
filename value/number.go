package value

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// IsFloatText reports whether JSON number text denotes a float: it has a
// fraction or an exponent.
func IsFloatText(text string) bool {
	return strings.ContainsAny(text, ".eE")
}

// ParseNumber converts JSON number text to an IntType node of full
// precision or a FloatType node.
func ParseNumber(text string) (*Node, error) {
	if IsFloatText(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", text, err)
		}
		return FromFloat(f), nil
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", text)
	}
	return &Node{Type: IntType, Int: i}, nil
}
