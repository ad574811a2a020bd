package validation

func integerValidator(kind Kind, fails func(int64) bool) Validator[int64] {
	return func(v Value[int64]) Value[int64] {
		if inner := v.Inner(); inner != nil && fails(*inner) {
			v.Push(kind)
		}
		return v
	}
}

// MaxInteger fails with MaxIntegerValue(limit) when the value exceeds limit.
func MaxInteger(limit int64) Validator[int64] {
	return integerValidator(MaxIntegerValue(limit), func(n int64) bool {
		return n > limit
	})
}

// MinInteger fails with MinIntegerValue(limit) when the value is below limit.
func MinInteger(limit int64) Validator[int64] {
	return integerValidator(MinIntegerValue(limit), func(n int64) bool {
		return n < limit
	})
}
