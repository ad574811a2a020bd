package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pipeText(text string, validators ...Validator[string]) Value[string] {
	return Pipe(NewValue(&text), validators...)
}

func TestMaxText(t *testing.T) {
	t.Run("passes at exactly the limit", func(t *testing.T) {
		v := pipeText(strings.Repeat("a", 255), MaxText(255))
		assert.Empty(t, v.Errors())
	})

	t.Run("fails one past the limit", func(t *testing.T) {
		v := pipeText(strings.Repeat("a", 256), MaxText(255))
		assert.Equal(t, []Kind{MaxTextLength(255)}, v.Errors())
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		// Three runes, nine bytes.
		v := pipeText("あいう", MaxText(3))
		assert.Empty(t, v.Errors())
	})

	t.Run("skips an unset field", func(t *testing.T) {
		v := Pipe(NewValue[string](nil), MaxText(255))
		assert.Empty(t, v.Errors())
	})
}

func TestMinText(t *testing.T) {
	t.Run("fails on empty string", func(t *testing.T) {
		v := pipeText("", MinText(1))
		assert.Equal(t, []Kind{MinTextLength(1)}, v.Errors())
	})

	t.Run("passes with one character", func(t *testing.T) {
		v := pipeText("a", MinText(1))
		assert.Empty(t, v.Errors())
	})
}

func TestDateFormat(t *testing.T) {
	valid := []string{"2010-03-14", "2024-02-29", "1999-12-31"}
	for _, date := range valid {
		v := pipeText(date, DateFormat())
		assert.Empty(t, v.Errors(), "date %q", date)
	}

	invalid := []string{"2015-02-29", "foobar", "foo2025-12-11bar", "2020-13-01", "20-01-01"}
	for _, date := range invalid {
		v := pipeText(date, DateFormat())
		assert.Equal(t, []Kind{InvalidFormat("YYYY-MM-DD")}, v.Errors(), "date %q", date)
	}
}

func TestTimeFormat(t *testing.T) {
	valid := []string{"00:00", "23:59", "12:30"}
	for _, clock := range valid {
		v := pipeText(clock, TimeFormat())
		assert.Empty(t, v.Errors(), "time %q", clock)
	}

	invalid := []string{"24:00", "23:60", "0:0", "foobar", "foo12:30bar"}
	for _, clock := range invalid {
		v := pipeText(clock, TimeFormat())
		assert.Equal(t, []Kind{InvalidFormat("24-hour format HH:mm")}, v.Errors(), "time %q", clock)
	}
}
