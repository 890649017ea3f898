package filter

import (
	"context"
	"iter"

	"github.com/go-leo/solid/specification"
)

// Stage transforms a sequence without consuming it.
type Stage[T any] interface {
	// Apply wraps seq, adding some step.
	Apply(seq iter.Seq[T]) iter.Seq[T]
}

// The StageFunc type is an adapter to allow the use of ordinary functions as Stage.
type StageFunc[T any] func(seq iter.Seq[T]) iter.Seq[T]

// Apply call f(seq).
func (f StageFunc[T]) Apply(seq iter.Seq[T]) iter.Seq[T] {
	return f(seq)
}

// Chain applies stages to seq in order, so the first stage sees the source items.
func Chain[T any](seq iter.Seq[T], stages ...Stage[T]) iter.Seq[T] {
	for _, stage := range stages {
		seq = stage.Apply(seq)
	}
	return seq
}

// Where is a Stage keeping the items satisfying spec.
func Where[T any](ctx context.Context, spec specification.Specification[T], opts ...Option) Stage[T] {
	f := New[T](opts...)
	return StageFunc[T](func(seq iter.Seq[T]) iter.Seq[T] {
		return f.Filter(ctx, seq, spec)
	})
}

// Take is a Stage yielding at most n items. Upstream items past the nth are never pulled.
func Take[T any](n int) Stage[T] {
	return StageFunc[T](func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			count := 0
			for item := range seq {
				if !yield(item) {
					return
				}
				count++
				if count >= n {
					return
				}
			}
		}
	})
}
