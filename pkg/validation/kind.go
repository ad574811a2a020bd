package validation

import "fmt"

type code int

const (
	codeRequired code = iota
	codeMaxTextLength
	codeMinTextLength
	codeMaxArraySize
	codeEmptyArray
	codeInvalidFormat
	codeMaxIntegerValue
	codeMinIntegerValue
	codeExclusiveField
	codeEitherRequired
	codeNoFieldProvided
)

// Kind describes a single constraint violation. Kinds are comparable, so
// callers and tests can match on the exact violation including its
// parameters (e.g. Field("text") contains MaxTextLength(255)).
type Kind struct {
	code   code
	limit  int64
	format string
	a, b   string
}

// Required reports a mandatory field that was not provided.
func Required() Kind {
	return Kind{code: codeRequired}
}

// MaxTextLength reports text longer than limit characters.
func MaxTextLength(limit int) Kind {
	return Kind{code: codeMaxTextLength, limit: int64(limit)}
}

// MinTextLength reports text shorter than limit characters.
func MinTextLength(limit int) Kind {
	return Kind{code: codeMinTextLength, limit: int64(limit)}
}

// MaxArraySize reports a list with more than limit items.
func MaxArraySize(limit int) Kind {
	return Kind{code: codeMaxArraySize, limit: int64(limit)}
}

// EmptyArray reports a list that must not be empty.
func EmptyArray() Kind {
	return Kind{code: codeEmptyArray}
}

// InvalidFormat reports a value that does not match the named format.
func InvalidFormat(format string) Kind {
	return Kind{code: codeInvalidFormat, format: format}
}

// MaxIntegerValue reports an integer above limit.
func MaxIntegerValue(limit int64) Kind {
	return Kind{code: codeMaxIntegerValue, limit: limit}
}

// MinIntegerValue reports an integer below limit.
func MinIntegerValue(limit int64) Kind {
	return Kind{code: codeMinIntegerValue, limit: limit}
}

// ExclusiveField reports that fields a and b were both provided although
// only one of them is allowed.
func ExclusiveField(a, b string) Kind {
	return Kind{code: codeExclusiveField, a: a, b: b}
}

// EitherRequired reports that neither a nor b was provided although one of
// them is mandatory.
func EitherRequired(a, b string) Kind {
	return Kind{code: codeEitherRequired, a: a, b: b}
}

// NoFieldProvided reports an object that needs at least one field set.
func NoFieldProvided() Kind {
	return Kind{code: codeNoFieldProvided}
}

func (k Kind) Error() string {
	switch k.code {
	case codeRequired:
		return "required"
	case codeMaxTextLength:
		return fmt.Sprintf("max text length `%d` characters", k.limit)
	case codeMinTextLength:
		return fmt.Sprintf("min text length `%d` characters", k.limit)
	case codeMaxArraySize:
		return fmt.Sprintf("max array length `%d` items", k.limit)
	case codeEmptyArray:
		return "the array cannot be empty"
	case codeInvalidFormat:
		return fmt.Sprintf("should be in the format `%s`", k.format)
	case codeMaxIntegerValue:
		return fmt.Sprintf("max value is `%d`", k.limit)
	case codeMinIntegerValue:
		return fmt.Sprintf("min value is `%d`", k.limit)
	case codeExclusiveField:
		return fmt.Sprintf("cannot provide both %s and %s", k.a, k.b)
	case codeEitherRequired:
		return fmt.Sprintf("required either %s or %s", k.a, k.b)
	case codeNoFieldProvided:
		return "required at least one field"
	default:
		return "unknown validation error"
	}
}

func (k Kind) String() string {
	return k.Error()
}
