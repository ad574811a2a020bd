package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeRunsValidatorsInOrder(t *testing.T) {
	var order []string
	record := func(name string) Validator[string] {
		return func(v Value[string]) Value[string] {
			order = append(order, name)
			return v
		}
	}

	text := "hello"
	Pipe(NewValue(&text), record("first"), record("second"), record("third"))

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPipeDoesNotShortCircuit(t *testing.T) {
	text := ""
	v := Pipe(NewValue(&text), MinText(1), MaxText(0))

	// Both validators ran even though the first already failed.
	require.Len(t, v.Errors(), 1)
	assert.True(t, Includes(v.Errors(), MinTextLength(1)))

	long := "ab"
	v = Pipe(NewValue(&long), MinText(3), MaxText(1))
	assert.True(t, Includes(v.Errors(), MinTextLength(3)))
	assert.True(t, Includes(v.Errors(), MaxTextLength(1)))
}

func TestValidatorLeavesInnerValueUntouched(t *testing.T) {
	text := "way too long"
	v := Pipe(NewValue(&text), MaxText(3))

	require.True(t, v.HasErrors())
	require.NotNil(t, v.Inner())
	assert.Equal(t, "way too long", *v.Inner())
}

func TestRequire(t *testing.T) {
	v := Pipe(NewValue[string](nil), Require[string]())
	assert.Equal(t, []Kind{Required()}, v.Errors())

	text := "set"
	v = Pipe(NewValue(&text), Require[string]())
	assert.False(t, v.HasErrors())
}

func TestPushItemAllocatesOnFirstUse(t *testing.T) {
	var list *[]int
	list = PushItem(list, 1)
	list = PushItem(list, 2)

	require.NotNil(t, list)
	assert.Equal(t, []int{1, 2}, *list)
}
