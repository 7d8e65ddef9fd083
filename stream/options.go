package stream

// StreamOption configures Encoder/Decoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	formatter  Formatter
	colors     *Colors
	escapeHTML bool
}

// WithFormatter sets the formatter consulted by the encoder at structural
// join points. The default is Compact().
func WithFormatter(f Formatter) StreamOption {
	return func(opts *streamOpts) {
		opts.formatter = f
	}
}

// WithColors colors keys and scalar values written by the encoder.
func WithColors(c *Colors) StreamOption {
	return func(opts *streamOpts) {
		opts.colors = c
	}
}

// WithEscapeHTML escapes <, > and & in strings as \u003c, \u003e and \u0026.
func WithEscapeHTML(v bool) StreamOption {
	return func(opts *streamOpts) {
		opts.escapeHTML = v
	}
}

func buildOpts(opts []StreamOption) (*streamOpts, error) {
	so := &streamOpts{}
	for _, opt := range opts {
		if opt == nil {
			return nil, &Error{Msg: "nil stream option"}
		}
		opt(so)
	}
	if so.formatter == nil {
		so.formatter = Compact()
	}
	return so, nil
}
