package composition

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestPlainTextBuilder(t *testing.T) {
	t.Run("builds a plain_text object", func(t *testing.T) {
		text, err := NewPlainTextBuilder().
			Text("Hello world").
			Emoji(true).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(text)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"plain_text","text":"Hello world","emoji":true}`, string(raw))
	})

	t.Run("requires text", func(t *testing.T) {
		_, err := NewPlainTextBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, "Text", errs.Object())
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("text"))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := NewPlainTextBuilder().Text("").Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MinTextLength(1)}, errs.Field("text"))
	})

	t.Run("rejects text over 3000 characters", func(t *testing.T) {
		_, err := NewPlainTextBuilder().
			Text(strings.Repeat("a", 3001)).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(3000)}, errs.Field("text"))
	})

	t.Run("re-setting text replaces earlier errors", func(t *testing.T) {
		text, err := NewPlainTextBuilder().
			Text("").
			Text("fixed").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "fixed", text.Text)
	})
}

func TestMrkdwnBuilder(t *testing.T) {
	t.Run("builds a mrkdwn object", func(t *testing.T) {
		text, err := NewMrkdwnBuilder().
			Text("*Hello* world").
			Verbatim(false).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(text)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"mrkdwn","text":"*Hello* world","verbatim":false}`, string(raw))
	})

	t.Run("requires text", func(t *testing.T) {
		_, err := NewMrkdwnBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("text"))
	})
}
