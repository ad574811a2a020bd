package composition

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestConfirmationDialogBuilder(t *testing.T) {
	t.Run("builds a confirmation dialog", func(t *testing.T) {
		dialog, err := NewConfirmationDialogBuilder().
			Title(plainText(t, "Are you sure?")).
			Text(plainText(t, "Wouldn't you prefer a good game of chess?")).
			Confirm(plainText(t, "Do it")).
			Deny(plainText(t, "Stop, I've changed my mind!")).
			Danger().
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(dialog)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"title": {"type": "plain_text", "text": "Are you sure?"},
			"text": {"type": "plain_text", "text": "Wouldn't you prefer a good game of chess?"},
			"confirm": {"type": "plain_text", "text": "Do it"},
			"deny": {"type": "plain_text", "text": "Stop, I've changed my mind!"},
			"style": "danger"
		}`, string(raw))
	})

	t.Run("requires all text fields", func(t *testing.T) {
		_, err := NewConfirmationDialogBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		for _, field := range []string{"title", "text", "confirm", "deny"} {
			assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field(field))
		}
	})

	t.Run("rejects over-length fields", func(t *testing.T) {
		_, err := NewConfirmationDialogBuilder().
			Title(plainText(t, strings.Repeat("t", 101))).
			Text(plainText(t, strings.Repeat("x", 301))).
			Confirm(plainText(t, strings.Repeat("c", 31))).
			Deny(plainText(t, strings.Repeat("d", 31))).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(100)}, errs.Field("title"))
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(300)}, errs.Field("text"))
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(30)}, errs.Field("confirm"))
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(30)}, errs.Field("deny"))
	})
}
