package critbit

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options configure a Tree or a Builder.
type Options struct {
	// Log receives debug output for copies, bulk builds and verification
	// failures. A nil Log disables logging.
	Log logger.Logger
}

// Option sets a field of Options.
type Option func(*Options)

// WithLogger sets the logger used by the tree and every copy made from it.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// NewOptions applies opts to the zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) debugf(format string, args ...any) {
	if o.Log == nil {
		return
	}
	o.Log.Debugf(format, args...)
}
