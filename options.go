package nanocurve

import (
	"github.com/hupe1980/nanocurve/codec"
	"github.com/hupe1980/nanocurve/curve"
)

type options struct {
	codec       codec.Codec
	compression Compression
	logger      *Logger
	params      curve.HelixParameters
}

func defaultOptions() options {
	return options{
		codec:       codec.Default,
		compression: DefaultCompression,
		logger:      NoopLogger(),
		params:      curve.DefaultHelixParameters(),
	}
}

// Option configures Design constructor/load behavior.
type Option func(*options)

// WithCodec configures the codec used for encoding design files.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression applied to design files.
//
// If nil is passed, DefaultCompression is used.
func WithCompression(c Compression) Option {
	return func(o *options) {
		if c == nil {
			c = DefaultCompression
		}
		o.compression = c
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithHelixParameters configures the helix parameters shared by every curve
// instantiation of the design.
func WithHelixParameters(p curve.HelixParameters) Option {
	return func(o *options) {
		o.params = p
	}
}
