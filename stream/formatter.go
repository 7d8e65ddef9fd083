package stream

// RawWriter is the view of the encoder given to a Formatter. Depth is the
// nesting depth including the container being written, so the contents of a
// top level object are at depth 1.
type RawWriter interface {
	WriteRaw(s string) error
	Depth() int
}

// Formatter decides the bytes written between structural tokens. The encoder
// calls exactly one hook per join point:
//
//	RootValueSeparator        between top level values
//	StartObject               writes "{"
//	BeforeObjectEntries       after "{", before the first key of a non-empty object
//	FieldValueSeparator       between a key and its value
//	ObjectEntrySeparator      between a value and the next key
//	EndObject(n)              writes the closing "}" of an object with n entries
//	StartArray                writes "["
//	BeforeArrayValues         after "[", before the first element of a non-empty array
//	ArrayValueSeparator       between elements
//	EndArray(n)               writes the closing "]" of an array with n elements
//
// Formatters keep no per-encoder state; one Formatter may serve many
// encoders at once.
type Formatter interface {
	RootValueSeparator(w RawWriter) error
	StartObject(w RawWriter) error
	BeforeObjectEntries(w RawWriter) error
	FieldValueSeparator(w RawWriter) error
	ObjectEntrySeparator(w RawWriter) error
	EndObject(w RawWriter, n int) error
	StartArray(w RawWriter) error
	BeforeArrayValues(w RawWriter) error
	ArrayValueSeparator(w RawWriter) error
	EndArray(w RawWriter, n int) error
}

// compactFormatter writes no whitespace except a line break between top
// level values.
type compactFormatter struct{}

// Compact returns the formatter used when none is configured.
func Compact() Formatter {
	return compactFormatter{}
}

func (compactFormatter) RootValueSeparator(w RawWriter) error   { return w.WriteRaw("\n") }
func (compactFormatter) StartObject(w RawWriter) error          { return w.WriteRaw("{") }
func (compactFormatter) BeforeObjectEntries(RawWriter) error    { return nil }
func (compactFormatter) FieldValueSeparator(w RawWriter) error  { return w.WriteRaw(":") }
func (compactFormatter) ObjectEntrySeparator(w RawWriter) error { return w.WriteRaw(",") }
func (compactFormatter) EndObject(w RawWriter, _ int) error     { return w.WriteRaw("}") }
func (compactFormatter) StartArray(w RawWriter) error           { return w.WriteRaw("[") }
func (compactFormatter) BeforeArrayValues(RawWriter) error      { return nil }
func (compactFormatter) ArrayValueSeparator(w RawWriter) error  { return w.WriteRaw(",") }
func (compactFormatter) EndArray(w RawWriter, _ int) error      { return w.WriteRaw("]") }
