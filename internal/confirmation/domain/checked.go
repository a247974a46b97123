package domain

import "fmt"

// CheckedValue is a value that carries its own validity. Free-text fields
// and coded fields both implement it, so presentation code can render and
// highlight them uniformly.
type CheckedValue interface {
	fmt.Stringer
	IsInvalid() bool
}

// StringValue is a free-text field paired with an invalid flag. The flag is
// set by the parser from a structural check; an empty value is always
// considered invalid regardless of the flag.
type StringValue struct {
	value   string
	invalid bool
}

func NewStringValue(s string, invalid bool) StringValue {
	return StringValue{value: s, invalid: invalid}
}

func NewValidString(s string) StringValue {
	return NewStringValue(s, false)
}

func NewInvalidString(s string) StringValue {
	return NewStringValue(s, true)
}

func (v StringValue) String() string {
	return v.value
}

func (v StringValue) IsInvalid() bool {
	return v.invalid || v.value == ""
}
