package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeText string

func (f fakeText) TextValue() string { return string(f) }

func TestMaxItems(t *testing.T) {
	t.Run("passes at exactly the limit", func(t *testing.T) {
		list := make([]int, 100)
		v := Pipe(NewValue(&list), MaxItems[int](100))
		assert.Empty(t, v.Errors())
	})

	t.Run("fails one past the limit", func(t *testing.T) {
		list := make([]int, 101)
		v := Pipe(NewValue(&list), MaxItems[int](100))
		assert.Equal(t, []Kind{MaxArraySize(100)}, v.Errors())
	})

	t.Run("skips an unset list", func(t *testing.T) {
		v := Pipe(NewValue[[]int](nil), MaxItems[int](5))
		assert.Empty(t, v.Errors())
	})
}

func TestNotEmpty(t *testing.T) {
	empty := []int{}
	v := Pipe(NewValue(&empty), NotEmpty[int]())
	assert.Equal(t, []Kind{EmptyArray()}, v.Errors())

	one := []int{0}
	v = Pipe(NewValue(&one), NotEmpty[int]())
	assert.Empty(t, v.Errors())
}

func TestEachTextMax(t *testing.T) {
	t.Run("records a single violation for the list", func(t *testing.T) {
		list := []fakeText{
			fakeText(strings.Repeat("a", 2001)),
			fakeText(strings.Repeat("b", 2001)),
		}
		v := Pipe(NewValue(&list), EachTextMax[fakeText](2000))
		assert.Equal(t, []Kind{MaxTextLength(2000)}, v.Errors())
	})

	t.Run("passes when every item is within the limit", func(t *testing.T) {
		list := []fakeText{"short", fakeText(strings.Repeat("a", 2000))}
		v := Pipe(NewValue(&list), EachTextMax[fakeText](2000))
		assert.Empty(t, v.Errors())
	})
}

func TestIntegerValidators(t *testing.T) {
	n := int64(10)
	v := Pipe(NewValue(&n), MaxInteger(10))
	assert.Empty(t, v.Errors())

	n = 11
	v = Pipe(NewValue(&n), MaxInteger(10))
	assert.Equal(t, []Kind{MaxIntegerValue(10)}, v.Errors())

	n = 1
	v = Pipe(NewValue(&n), MinInteger(1))
	assert.Empty(t, v.Errors())

	n = 0
	v = Pipe(NewValue(&n), MinInteger(1))
	assert.Equal(t, []Kind{MinIntegerValue(1)}, v.Errors())
}
