// Package validation holds the build-time validation engine shared by every
// builder in this module: the per-field value cell, the validator pipeline
// that runs against it, and the field-indexed error report a failed Build
// returns.
package validation

// Value is one builder field slot. It tracks the candidate value (nil when
// the field is unset) together with every violation recorded against it so
// far. A setter rebuilds the cell from scratch through Pipe, so re-setting
// a field replaces its error state instead of accumulating duplicates.
type Value[T any] struct {
	inner *T
	errs  []Kind
}

// NewValue wraps a candidate value without running any validator.
func NewValue[T any](inner *T) Value[T] {
	return Value[T]{inner: inner}
}

// Inner returns the candidate value without consuming the cell.
func (v Value[T]) Inner() *T {
	return v.inner
}

// Errors returns the violations recorded so far.
func (v Value[T]) Errors() []Kind {
	return v.errs
}

// HasErrors reports whether any violation has been recorded.
func (v Value[T]) HasErrors() bool {
	return len(v.errs) > 0
}

// Push records one violation. The candidate value is left untouched so the
// caller can still inspect what was attempted.
func (v *Value[T]) Push(kind Kind) {
	v.errs = append(v.errs, kind)
}

// Validator inspects a cell and returns it with any new violation appended.
// Validators never mutate or discard the inner value.
type Validator[T any] func(Value[T]) Value[T]

// Pipe threads a cell through every validator in declared order. The chain
// never short-circuits: a validator runs even after earlier ones failed, so
// a field carrying several violations reports all of them.
func Pipe[T any](v Value[T], validators ...Validator[T]) Value[T] {
	for _, validate := range validators {
		v = validate(v)
	}
	return v
}

// Require fails with Required when the field is unset.
func Require[T any]() Validator[T] {
	return func(v Value[T]) Value[T] {
		if v.Inner() == nil {
			v.Push(Required())
		}
		return v
	}
}

// PushItem appends to a list field's bare accumulator, allocating it on
// first use. List validators run only at Build, never per push.
func PushItem[T any](list *[]T, item T) *[]T {
	if list == nil {
		list = new([]T)
	}
	*list = append(*list, item)
	return list
}
