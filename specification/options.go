package specification

import "strings"

const defaultTagKey = "spec"

type options struct {
	TagKey       string
	NameComparer func(t, s string) bool
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) correct() *options {
	if o.TagKey == "" {
		o.TagKey = defaultTagKey
	}
	if o.NameComparer == nil {
		o.NameComparer = strings.EqualFold
	}
	return o
}

type Option func(o *options)

// TagKey sets the struct tag used to label fields. Defaults to "spec".
func TagKey(key string) Option {
	return func(o *options) {
		o.TagKey = key
	}
}

// NameComparer sets how a requested field name is matched against a label.
// Defaults to strings.EqualFold.
func NameComparer(comparer func(t, s string) bool) Option {
	return func(o *options) {
		o.NameComparer = comparer
	}
}
