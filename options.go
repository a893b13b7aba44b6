package tickloop

import "github.com/joeycumines/logiface"

// runtimeOptions holds configuration options for Runtime creation.
type runtimeOptions struct {
	logger  *logiface.Logger[logiface.Event]
	metrics bool
}

// Option configures a [Runtime] instance.
type Option interface {
	applyRuntime(*runtimeOptions)
}

// optionImpl implements Option.
type optionImpl struct {
	applyRuntimeFunc func(*runtimeOptions)
}

func (x *optionImpl) applyRuntime(opts *runtimeOptions) {
	x.applyRuntimeFunc(opts)
}

// WithLogger attaches a structured logger to the runtime. The default is no
// logger, in which case all logging is a no-op (logiface treats a nil logger
// as disabled).
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *runtimeOptions) {
		opts.logger = logger
	}}
}

// WithMetrics enables runtime counters, accessible via [Runtime.Metrics].
// Disabled by default; when disabled, Metrics returns zero values and the
// hot paths skip all counter updates.
func WithMetrics(enabled bool) Option {
	return &optionImpl{func(opts *runtimeOptions) {
		opts.metrics = enabled
	}}
}

// resolveRuntimeOptions applies Option instances to runtimeOptions.
func resolveRuntimeOptions(opts []Option) *runtimeOptions {
	cfg := &runtimeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		opt.applyRuntime(cfg)
	}
	return cfg
}
