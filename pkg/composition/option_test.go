package composition

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestOptBuilder(t *testing.T) {
	t.Run("builds an option", func(t *testing.T) {
		opt, err := NewOptBuilder().
			Text(plainText(t, "Maru")).
			Value("maru").
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(opt)
		require.NoError(t, err)
		assert.JSONEq(t, `{"text":{"type":"plain_text","text":"Maru"},"value":"maru"}`, string(raw))
	})

	t.Run("requires text and value", func(t *testing.T) {
		_, err := NewOptBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("text"))
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("value"))
	})

	t.Run("rejects text over 75 characters", func(t *testing.T) {
		_, err := NewOptBuilder().
			Text(plainText(t, strings.Repeat("a", 76))).
			Value("v").
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(75)}, errs.Field("text"))
	})

	t.Run("rejects value over 150 characters", func(t *testing.T) {
		_, err := NewOptBuilder().
			Text(plainText(t, "label")).
			Value(strings.Repeat("v", 151)).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(150)}, errs.Field("value"))
	})

	t.Run("rejects description over 75 characters", func(t *testing.T) {
		_, err := NewOptBuilder().
			Text(plainText(t, "label")).
			Value("v").
			Description(plainText(t, strings.Repeat("d", 76))).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(75)}, errs.Field("description"))
	})
}

func TestOptGroupBuilder(t *testing.T) {
	t.Run("builds an option group", func(t *testing.T) {
		group, err := NewOptGroupBuilder().
			Label(plainText(t, "Cats")).
			Option(option(t, "Maru", "maru")).
			Option(option(t, "Mugi", "mugi")).
			Build()
		require.NoError(t, err)
		assert.Len(t, group.Options, 2)
	})

	t.Run("requires label and options", func(t *testing.T) {
		_, err := NewOptGroupBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("label"))
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("options"))
	})

	t.Run("rejects more than 100 options", func(t *testing.T) {
		builder := NewOptGroupBuilder().Label(plainText(t, "Cats"))
		for i := 0; i < 101; i++ {
			builder.Option(option(t, "Maru", "maru"))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(100)}, errs.Field("options"))
	})
}
