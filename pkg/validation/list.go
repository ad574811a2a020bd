package validation

import "unicode/utf8"

// MaxItems fails with MaxArraySize(limit) when the list holds more than
// limit items. Exactly limit items pass.
func MaxItems[T any](limit int) Validator[[]T] {
	return func(v Value[[]T]) Value[[]T] {
		if inner := v.Inner(); inner != nil && len(*inner) > limit {
			v.Push(MaxArraySize(limit))
		}
		return v
	}
}

// NotEmpty fails with EmptyArray when the list is present but empty.
func NotEmpty[T any]() Validator[[]T] {
	return func(v Value[[]T]) Value[[]T] {
		if inner := v.Inner(); inner != nil && len(*inner) == 0 {
			v.Push(EmptyArray())
		}
		return v
	}
}

// EachTextMax fails with MaxTextLength(limit) when any text object in the
// list exceeds limit characters. A single violation is recorded for the
// whole list.
func EachTextMax[T Texter](limit int) Validator[[]T] {
	return func(v Value[[]T]) Value[[]T] {
		inner := v.Inner()
		if inner == nil {
			return v
		}
		for _, item := range *inner {
			if utf8.RuneCountInString(item.TextValue()) > limit {
				v.Push(MaxTextLength(limit))
				break
			}
		}
		return v
	}
}
