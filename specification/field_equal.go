package specification

import (
	"context"
	"encoding"
	"reflect"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// FieldEqual create a new specification satisfied by records whose field called name equals
// target. T must be a struct or a pointer to a struct.
//
// The field is resolved once, here: an unknown name fails with ErrInvalidField, a field that
// does not support == fails with ErrIncomparableField, and a target that cannot become a value
// of the field's type fails with ErrMismatchedValue. Targets are used as is when assignable,
// converted between numeric, string or bool kinds when lossless, and parsed with
// encoding.TextUnmarshaler when target is a string.
//
// The returned specification never fails: a nil record, or a nil embedded pointer on the way
// to the field, is simply not satisfied.
func FieldEqual[T any](name string, target any, opts ...Option) (Specification[T], error) {
	o := new(options).apply(opts...).correct()
	recordType := reflect.TypeOf((*T)(nil)).Elem()
	structType := recordType
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, newUnsupportedTypeError(recordType)
	}
	info := _CachedStructInfo(structType, o)
	field := info.FindField(name, o)
	if field == nil {
		return nil, newInvalidFieldError(recordType, name)
	}
	if !field.Type.Comparable() {
		return nil, newIncomparableFieldError(recordType, field.Label, field.Type)
	}
	targetVal, err := targetValue(field.Type, target)
	if err != nil {
		return nil, newMismatchedValueError(recordType, field.Label, field.Type, target, err)
	}
	if !targetVal.IsValid() || (targetVal.Kind() == reflect.Interface && !targetVal.IsNil() && !targetVal.Comparable()) {
		return nil, newMismatchedValueError(recordType, field.Label, field.Type, target, nil)
	}
	return &fieldEqual[T]{Info: info, Field: field, Target: targetVal}, nil
}

// fieldEqual compares a struct field, found by reflection, against a fixed target.
type fieldEqual[T any] struct {
	Info   *_StructInfo
	Field  *_FieldInfo
	Target reflect.Value
}

func (spec *fieldEqual[T]) IsSatisfiedBy(_ context.Context, t T) bool {
	structVal := reflect.ValueOf(&t).Elem()
	if structVal.Kind() == reflect.Pointer {
		if structVal.IsNil() {
			return false
		}
		structVal = structVal.Elem()
	}
	fieldVal, ok := spec.Info.FindGettableValue(structVal, spec.Field)
	if !ok {
		return false
	}
	if fieldVal.Kind() == reflect.Interface && fieldVal.IsNil() {
		return fieldVal.Equal(spec.Target)
	}
	// interface fields may hold values that panic on ==
	if !fieldVal.Comparable() {
		return false
	}
	return fieldVal.Equal(spec.Target)
}

// targetValue returns target as a value of fieldType. An invalid value with a nil error
// means no conversion applies.
func targetValue(fieldType reflect.Type, target any) (reflect.Value, error) {
	if target == nil {
		switch fieldType.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Chan:
			return reflect.Zero(fieldType), nil
		default:
			return reflect.Value{}, nil
		}
	}
	targetVal := reflect.ValueOf(target)
	targetType := targetVal.Type()
	if targetType.AssignableTo(fieldType) {
		val := reflect.New(fieldType).Elem()
		val.Set(targetVal)
		return val, nil
	}
	if s, ok := target.(string); ok && reflect.PointerTo(fieldType).Implements(textUnmarshalerType) {
		ptr := reflect.New(fieldType)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return reflect.Value{}, err
		}
		return ptr.Elem(), nil
	}
	if sameKindClass(targetType.Kind(), fieldType.Kind()) && targetType.ConvertibleTo(fieldType) {
		converted := targetVal.Convert(fieldType)
		// reject lossy conversions such as 300 -> uint8 or 1.5 -> int
		if !converted.Convert(targetType).Equal(targetVal) {
			return reflect.Value{}, nil
		}
		return converted, nil
	}
	return reflect.Value{}, nil
}

func sameKindClass(a, b reflect.Kind) bool {
	return kindClass(a) != 0 && kindClass(a) == kindClass(b)
}

func kindClass(kind reflect.Kind) int {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return 1
	case reflect.String:
		return 2
	case reflect.Bool:
		return 3
	default:
		return 0
	}
}
