// Package codec converts between value trees and JSON text.
//
// Encode walks a *value.Node and issues the matching stream.Encoder calls;
// EncodeAny does the same for host values classified by capability. Decode
// reads one value from a stream.Decoder, and DecodeAll reads values until
// the input ends.
//
// # Usage
//
//	f, _ := format.New(format.Indent(4))
//	enc, _ := stream.NewEncoder(os.Stdout, stream.WithFormatter(f))
//	if err := codec.Encode(enc, node); err != nil {
//	    return err
//	}
//
//	eof := &value.Node{}
//	dec, _ := stream.NewDecoder(os.Stdin)
//	for {
//	    node, err := codec.Decode(dec, true, false, eof)
//	    if err != nil {
//	        return err
//	    }
//	    if node == eof {
//	        break
//	    }
//	    ...
//	}
//
// # Errors
//
// Encoding a value without a JSON form fails with *UnsupportedValueError
// and decoding text which is not JSON fails with *MalformedJSONError. Both
// can be matched with errors.Is against ErrUnsupportedValue and
// ErrMalformedJSON.
package codec
