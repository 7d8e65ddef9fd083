package format

// Option configures a Formatter built by New.
type Option func(*config)

type config struct {
	width         *int
	indentString  *string
	lineBreak     string
	indentObjects bool
	indentArrays  bool
	compact       bool

	beforeArrayValues   *string
	afterArrayValues    *string
	fieldValueSeparator *string
}

func defaultConfig() *config {
	return &config{
		lineBreak:     "\n",
		indentObjects: true,
		indentArrays:  true,
	}
}

// Indent sets the indentation unit to n spaces.
func Indent(n int) Option {
	return func(c *config) { c.width = &n }
}

// IndentString sets the indentation unit to s, which must be whitespace.
func IndentString(s string) Option {
	return func(c *config) { c.indentString = &s }
}

// LineBreak sets the line break written before indented entries.
func LineBreak(s string) Option {
	return func(c *config) { c.lineBreak = s }
}

func IndentObjects(v bool) Option {
	return func(c *config) { c.indentObjects = v }
}

func IndentArrays(v bool) Option {
	return func(c *config) { c.indentArrays = v }
}

// Compact turns off indentation of both container kinds and drops the space
// after the field value separator.
func Compact() Option {
	return func(c *config) {
		c.compact = true
		c.indentObjects = false
		c.indentArrays = false
	}
}

// BeforeArrayValues replaces the text written after "[" of a non-empty
// array. Arrays then keep their elements on one line.
func BeforeArrayValues(s string) Option {
	return func(c *config) { c.beforeArrayValues = &s }
}

// AfterArrayValues replaces the text written before "]". The override and
// the bracket are written together, for empty arrays too.
func AfterArrayValues(s string) Option {
	return func(c *config) { c.afterArrayValues = &s }
}

// FieldValueSeparator replaces the text written between an object key and
// its value.
func FieldValueSeparator(s string) Option {
	return func(c *config) { c.fieldValueSeparator = &s }
}
