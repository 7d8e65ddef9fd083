package stream

import (
	"fmt"
	"math/big"
	"strconv"
)

// Event represents a structural event from the decoder.
// Events correspond to the encoder's API methods, providing a symmetric
// encode/decode interface.
type Event struct {
	Type EventType

	// Value fields (only one is set based on Type)
	Key    string
	String string
	Number string // raw number text for EventInt and EventFloat
	Bool   bool
}

// IsValueStart returns true if this event starts a value (as opposed to a
// key or end marker).
func (e *Event) IsValueStart() bool {
	return e.Type == EventBeginObject ||
		e.Type == EventBeginArray ||
		e.Type == EventString ||
		e.Type == EventInt ||
		e.Type == EventFloat ||
		e.Type == EventBool ||
		e.Type == EventNull
}

// Int64 returns the value of an EventInt which fits in an int64.
func (e *Event) Int64() (int64, error) {
	if e.Type != EventInt {
		return 0, fmt.Errorf("%s event is not an integer", e.Type)
	}
	return strconv.ParseInt(e.Number, 10, 64)
}

// BigInt returns the full precision value of an EventInt.
func (e *Event) BigInt() (*big.Int, error) {
	if e.Type != EventInt {
		return nil, fmt.Errorf("%s event is not an integer", e.Type)
	}
	i, ok := new(big.Int).SetString(e.Number, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", e.Number)
	}
	return i, nil
}

// Float64 returns the value of an EventFloat or EventInt as a float64.
func (e *Event) Float64() (float64, error) {
	if e.Type != EventFloat && e.Type != EventInt {
		return 0, fmt.Errorf("%s event is not a number", e.Type)
	}
	return strconv.ParseFloat(e.Number, 64)
}

// Describe returns a short human readable form of the event for messages,
// such as `key "a"` or `'}'`.
func (e *Event) Describe() string {
	if e == nil {
		return "end of input"
	}
	switch e.Type {
	case EventKey:
		return "key " + strconv.Quote(e.Key)
	case EventString:
		return "string " + strconv.Quote(e.String)
	case EventInt, EventFloat:
		return "number " + e.Number
	case EventBool:
		return strconv.FormatBool(e.Bool)
	case EventNull:
		return "null"
	case EventBeginObject:
		return "'{'"
	case EventEndObject:
		return "'}'"
	case EventBeginArray:
		return "'['"
	case EventEndArray:
		return "']'"
	}
	return e.Type.String()
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventBeginObject EventType = iota
	EventEndObject
	EventBeginArray
	EventEndArray
	EventKey
	EventString
	EventInt
	EventFloat
	EventBool
	EventNull
)

func (t EventType) String() string {
	switch t {
	case EventBeginObject:
		return "BeginObject"
	case EventEndObject:
		return "EndObject"
	case EventBeginArray:
		return "BeginArray"
	case EventEndArray:
		return "EndArray"
	case EventKey:
		return "Key"
	case EventString:
		return "String"
	case EventInt:
		return "Int"
	case EventFloat:
		return "Float"
	case EventBool:
		return "Bool"
	case EventNull:
		return "Null"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"BeginObject": EventBeginObject,
		"EndObject":   EventEndObject,
		"BeginArray":  EventBeginArray,
		"EndArray":    EventEndArray,
		"Key":         EventKey,
		"String":      EventString,
		"Int":         EventInt,
		"Float":       EventFloat,
		"Bool":        EventBool,
		"Null":        EventNull,
	}[k]
	if !ok {
		return fmt.Errorf("unknown event type %q", k)
	}
	*t = pt
	return nil
}
