package investment

import (
	"firm-investment/internal/rootfind"

	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	solver rootfind.Config
}

// Option customizes Build.
type Option func(*options)

// WithLogger logs the reference solves and the resulting grid bounds.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSolverConfig overrides the Newton settings of the steady-state solves.
func WithSolverConfig(c rootfind.Config) Option {
	return func(o *options) { o.solver = c }
}

func buildOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		solver: rootfind.DefaultConfig,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
