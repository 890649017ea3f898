package specification

import "context"

// conjunction is the AND of any number of specifications.
// Evaluation stops at the first child that is not satisfied.
type conjunction[T any] struct {
	Specs []Specification[T]
}

func (spec *conjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, spec := range spec.Specs {
		if !spec.IsSatisfiedBy(ctx, t) {
			return false
		}
	}
	return true
}
