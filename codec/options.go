package codec

// DefaultMaxDepth bounds the nesting accepted by Decode.
const DefaultMaxDepth = 10000

// DecodeOption configures Decode, DecodeAll and Unmarshal.
type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	maxDepth      int
	keysAsSymbols bool
}

func newDecodeOpts(opts []DecodeOption) *decodeOpts {
	do := &decodeOpts{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(do)
	}
	return do
}

// WithMaxDepth sets the deepest nesting of arrays and objects accepted.
// Values below 1 select DefaultMaxDepth.
func WithMaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// WithKeysAsSymbols makes object keys decode as symbols. For Decode and
// DecodeAll it is combined with the keysAsSymbols argument: either one
// selects symbol keys.
func WithKeysAsSymbols(v bool) DecodeOption {
	return func(o *decodeOpts) {
		o.keysAsSymbols = v
	}
}
