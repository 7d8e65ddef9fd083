// Package stream provides streaming encode/decode of JSON text as
// structural events.
//
// The decoder is built on the jsontext tokenizer and reports object member
// names as key events, tracking the nesting depth and path of each event.
// The encoder mirrors the decoder's events with explicit Begin/End and Write
// calls and delegates every byte between tokens to a [Formatter].
//
// # Example: Encoding
//
//	enc, err := stream.NewEncoder(writer, stream.WithFormatter(f))
//	if err != nil {
//	    return err
//	}
//	enc.BeginObject()
//	enc.WriteKey("name")
//	enc.WriteString("value")
//	enc.EndObject()
//
// # Example: Decoding
//
//	dec, err := stream.NewDecoder(reader)
//	if err != nil {
//	    return err
//	}
//	event, _ := dec.ReadEvent()  // EventBeginObject
//	event, _ := dec.ReadEvent()  // EventKey("name")
//	event, _ := dec.ReadEvent()  // EventString("value")
//	event, _ := dec.ReadEvent()  // EventEndObject
//
// # Formatting
//
// Without a formatter option the encoder writes compact JSON. The format
// package provides a configurable pretty printer implementing [Formatter].
package stream
