package specification

import "context"

// or used to create a new specification that is the OR of two other specifications.
type or[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (spec *or[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return spec.Left.IsSatisfiedBy(ctx, t) || spec.Right.IsSatisfiedBy(ctx, t)
}

// disjunction is the OR of any number of specifications.
type disjunction[T any] struct {
	Specs []Specification[T]
}

func (spec *disjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, spec := range spec.Specs {
		if spec.IsSatisfiedBy(ctx, t) {
			return true
		}
	}
	return false
}
