package specification

import "context"

// Field names one attribute of T and knows how to read it.
// The zero Field is not usable; build one with NewField.
type Field[T any, V comparable] struct {
	name string
	get  func(t T) V
}

// NewField creates a Field called name that reads its value with get.
func NewField[T any, V comparable](name string, get func(t T) V) Field[T, V] {
	return Field[T, V]{name: name, get: get}
}

// Name return the name of the field.
func (f Field[T, V]) Name() string {
	return f.name
}

// Get return the value of the field in t.
func (f Field[T, V]) Get(t T) V {
	return f.get(t)
}

// Equal create a new specification satisfied by records whose field equals target.
func (f Field[T, V]) Equal(target V) Specification[T] {
	return &equal[T, V]{Field: f, Target: target}
}

// Equal create a new specification satisfied when get(t) equals target.
func Equal[T any, V comparable](get func(t T) V, target V) Specification[T] {
	return NewField[T, V]("", get).Equal(target)
}

// equal compares one field of a record against a fixed target.
type equal[T any, V comparable] struct {
	Field  Field[T, V]
	Target V
}

func (spec *equal[T, V]) IsSatisfiedBy(_ context.Context, t T) bool {
	return spec.Field.get(t) == spec.Target
}
