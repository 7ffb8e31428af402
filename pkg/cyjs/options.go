package cyjs

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures [Data] and [Graph].
type Option func(*options)

type options struct {
	keys   AttrKeys
	logger *log.Logger
}

// WithAttrKeys sets the attribute-key mapping. Empty fields keep their
// defaults.
func WithAttrKeys(k AttrKeys) Option {
	return func(o *options) { o.keys = k }
}

// WithLogger routes debug output about the conversion to l.
// Without it the conversion is silent.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// resolveOptions applies opts and validates the mapping before any
// conversion work starts.
func resolveOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.keys.Validate(); err != nil {
		return o, err
	}
	o.keys = o.keys.Resolve()
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o, nil
}
