package specification

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidField the record type has no field with the requested name
	ErrInvalidField = errors.New("specification: invalid field")

	// ErrUnsupportedType the record type is not a struct or pointer to struct
	ErrUnsupportedType = errors.New("specification: unsupported record type")

	// ErrIncomparableField the field type does not support ==
	ErrIncomparableField = errors.New("specification: incomparable field")

	// ErrMismatchedValue the target value cannot be compared with the field
	ErrMismatchedValue = errors.New("specification: mismatched value")
)

type Code int

const (
	InvalidField Code = iota + 1
	UnsupportedType
	IncomparableField
	MismatchedValue
)

// Error is returned when a specification cannot be built for a record type.
type Error struct {
	Code       Code
	Field      string
	RecordType reflect.Type
	FieldType  reflect.Type
	Value      any
	err        error
}

func (e Error) Error() string {
	switch e.Code {
	case InvalidField:
		return fmt.Sprintf("specification: invalid field error, type(%s) has no field %q", e.RecordType, e.Field)
	case UnsupportedType:
		return fmt.Sprintf("specification: unsupported type error, type(%s) is not a struct", e.RecordType)
	case IncomparableField:
		return fmt.Sprintf("specification: incomparable field error, %s, type(%s)", e.Field, e.FieldType)
	case MismatchedValue:
		if e.err != nil {
			return fmt.Sprintf("specification: mismatched value error, %s, value(%v) -> type(%s), %v", e.Field, e.Value, e.FieldType, e.err)
		}
		return fmt.Sprintf("specification: mismatched value error, %s, value(%v) -> type(%s)", e.Field, e.Value, e.FieldType)
	default:
		return ""
	}
}

// Is reports whether target is the sentinel matching e.Code.
func (e Error) Is(target error) bool {
	switch e.Code {
	case InvalidField:
		return target == ErrInvalidField
	case UnsupportedType:
		return target == ErrUnsupportedType
	case IncomparableField:
		return target == ErrIncomparableField
	case MismatchedValue:
		return target == ErrMismatchedValue
	default:
		return false
	}
}

func (e Error) Unwrap() error {
	return e.err
}

func newInvalidFieldError(recordType reflect.Type, field string) error {
	return Error{Code: InvalidField, RecordType: recordType, Field: field}
}

func newUnsupportedTypeError(recordType reflect.Type) error {
	return Error{Code: UnsupportedType, RecordType: recordType}
}

func newIncomparableFieldError(recordType reflect.Type, field string, fieldType reflect.Type) error {
	return Error{Code: IncomparableField, RecordType: recordType, Field: field, FieldType: fieldType}
}

func newMismatchedValueError(recordType reflect.Type, field string, fieldType reflect.Type, value any, err error) error {
	return Error{Code: MismatchedValue, RecordType: recordType, Field: field, FieldType: fieldType, Value: value, err: err}
}
