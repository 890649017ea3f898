// Package filter applies specifications to collections.
//
// Results are lazy sequences: nothing is evaluated until the caller ranges over the result,
// each range starts again from the first item, and stopping early evaluates nothing further.
// The engine holds no mutable state, so concurrent filters over the same collection need no
// locking. Callers must not modify a slice while a sequence over it is being consumed.
package filter

import (
	"context"
	"iter"
	"slices"

	"github.com/go-leo/solid/specification"
	"go.uber.org/zap"
)

// Filter selects the items satisfying a specification.
type Filter[T any] interface {
	// Filter return the items satisfying spec, in their original order.
	Filter(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq[T]
}

// The Func type is an adapter to allow the use of ordinary functions as Filter.
type Func[T any] func(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq[T]

// Filter calls f(ctx, items, spec).
func (f Func[T]) Filter(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq[T] {
	return f(ctx, items, spec)
}

var _ Filter[any] = (*filter[any])(nil)

type filter[T any] struct {
	options *options
}

// New creates the default Filter.
func New[T any](opts ...Option) Filter[T] {
	return &filter[T]{options: newOptions(opts...)}
}

func (f *filter[T]) Filter(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq[T] {
	logger := f.options.Logger
	return func(yield func(T) bool) {
		index := -1
		for item := range items {
			index++
			if !spec.IsSatisfiedBy(ctx, item) {
				if ce := logger.Check(zap.DebugLevel, "item rejected"); ce != nil {
					ce.Write(zap.Int("index", index))
				}
				continue
			}
			if ce := logger.Check(zap.DebugLevel, "item matched"); ce != nil {
				ce.Write(zap.Int("index", index))
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Seq filters a sequence with the default Filter.
func Seq[T any](ctx context.Context, items iter.Seq[T], spec specification.Specification[T], opts ...Option) iter.Seq[T] {
	return New[T](opts...).Filter(ctx, items, spec)
}

// Slice filters a slice with the default Filter.
func Slice[T any](ctx context.Context, items []T, spec specification.Specification[T], opts ...Option) iter.Seq[T] {
	return Seq(ctx, slices.Values(items), spec, opts...)
}
