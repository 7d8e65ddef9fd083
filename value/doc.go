// Package value contains the generic JSON value tree shared by the codec.
//
// A [Node] is a closed tagged union over [Type]: objects, arrays, strings,
// symbols, arbitrary precision integers, floats, booleans and null. Nodes
// produced by the decoder are never mutated afterwards and the encoder never
// mutates its input, so a tree may be shared freely once built.
//
// # Usage
//
//	node := value.FromKeyVals([]value.KeyVal{
//	    {Key: value.FromString("name"), Val: value.FromString("alice")},
//	    {Key: value.Sym("age"), Val: value.FromInt(30)},
//	})
//
// Host values (maps, slices, iterators, channels, Go scalars) are converted
// by capability rather than by concrete type; see [Inspect] and [FromAny].
//
// # Related Packages
//
//   - github.com/signadot/jsonv/codec - encode/decode nodes as JSON
//   - github.com/signadot/jsonv/stream - token level JSON reader and writer
package value
