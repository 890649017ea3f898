// Package specification provides composable predicates over records.
//
// A Specification answers a single question about a value: does it satisfy the rule?
// Specifications are immutable once constructed and hold no reference to any collection,
// so the same specification may be shared by concurrent readers.
package specification

import (
	"context"

	"golang.org/x/exp/slices"
)

// Specification is a predicate over T.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	// It must not mutate t and must answer the same for the same t.
	IsSatisfiedBy(ctx context.Context, t T) bool
}

// The Func type is an adapter to allow the use of ordinary functions as Specification.
// If f is a function with the appropriate signature, Func(f) is a Specification that calls f.
type Func[T any] func(ctx context.Context, t T) bool

// IsSatisfiedBy calls f(ctx, t).
func (f Func[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return f(ctx, t)
}

// New creates a Specification from predicate.
func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	return Func[T](predicate)
}

// And create a new specification that is the AND operation of left and right.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &and[T]{Left: left, Right: right}
}

// Or create a new specification that is the OR operation of left and right.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &or[T]{Left: left, Right: right}
}

// Not create a new specification that is the NOT operation of spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return &not[T]{Spec: spec}
}

// Conjunction create a new specification satisfied when every one of specs is satisfied.
// With no specs it is satisfied by everything.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return &conjunction[T]{Specs: slices.Clone(specs)}
}

// Disjunction create a new specification satisfied when any one of specs is satisfied.
// With no specs it is satisfied by nothing.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return &disjunction[T]{Specs: slices.Clone(specs)}
}
