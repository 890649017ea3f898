package journal

import (
	"os"

	"go.uber.org/zap"
)

type options struct {
	Logger *zap.Logger
	Perm   os.FileMode
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Perm == 0 {
		o.Perm = 0o644
	}
	return o
}

type Option func(*options)

func Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

// Perm sets the permission bits of saved files. Defaults to 0644.
func Perm(perm os.FileMode) Option {
	return func(o *options) {
		o.Perm = perm
	}
}
