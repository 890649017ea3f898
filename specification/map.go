package specification

import (
	"context"
	"reflect"
)

// MapFieldEqual create a new specification over attribute bags, satisfied when key is present
// and its value equals target. Values of different dynamic types are never equal, so
// float64(1) does not equal int(1).
func MapFieldEqual(key string, target any) Specification[map[string]any] {
	return &mapFieldEqual{Key: key, Target: reflect.ValueOf(target)}
}

type mapFieldEqual struct {
	Key    string
	Target reflect.Value
}

func (spec *mapFieldEqual) IsSatisfiedBy(_ context.Context, m map[string]any) bool {
	value, ok := m[spec.Key]
	if !ok {
		return false
	}
	val := reflect.ValueOf(value)
	if !val.IsValid() || !spec.Target.IsValid() {
		return val.IsValid() == spec.Target.IsValid()
	}
	if !val.Comparable() || !spec.Target.Comparable() {
		return false
	}
	return val.Equal(spec.Target)
}
