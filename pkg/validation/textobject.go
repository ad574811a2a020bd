package validation

import "unicode/utf8"

// Texter is implemented by composition objects carrying displayable text,
// so text-length validators can run against whole objects (e.g. a Section
// title or an Opt label) instead of bare strings.
type Texter interface {
	TextValue() string
}

func texterValidator[T Texter](kind Kind, fails func(string) bool) Validator[T] {
	return func(v Value[T]) Value[T] {
		if inner := v.Inner(); inner != nil && fails((*inner).TextValue()) {
			v.Push(kind)
		}
		return v
	}
}

// TexterMaxLength fails with MaxTextLength(limit) when the object's text
// exceeds limit characters.
func TexterMaxLength[T Texter](limit int) Validator[T] {
	return texterValidator[T](MaxTextLength(limit), func(s string) bool {
		return utf8.RuneCountInString(s) > limit
	})
}

// TexterMinLength fails with MinTextLength(limit) when the object's text is
// shorter than limit characters.
func TexterMinLength[T Texter](limit int) Validator[T] {
	return texterValidator[T](MinTextLength(limit), func(s string) bool {
		return utf8.RuneCountInString(s) < limit
	})
}
