package stego

import (
	"stegbench/internal/bits"
)

// Sink receives debug events from the engines. *slog.Logger satisfies it.
type Sink interface {
	Debug(msg string, args ...any)
}

type nopSink struct{}

func (nopSink) Debug(string, ...any) {}

type options struct {
	sink    Sink
	framing bits.Framing
}

type Option func(*options)

// WithSink routes engine events to the supplied sink.
func WithSink(sink Sink) Option {
	return func(o *options) {
		if sink != nil {
			o.sink = sink
		}
	}
}

// WithLengthPrefix stores the payload length in a header instead of ending the payload with a zero byte, so payloads
// may contain zero bytes. Images embedded this way must be extracted with the same option.
func WithLengthPrefix() Option {
	return func(o *options) {
		o.framing = bits.LengthPrefixed
	}
}

func buildOptions(opts []Option) options {
	o := options{sink: nopSink{}, framing: bits.Terminated}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
