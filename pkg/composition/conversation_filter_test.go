package composition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestConversationFilterBuilder(t *testing.T) {
	t.Run("builds a filter", func(t *testing.T) {
		filter, err := NewConversationFilterBuilder().
			Include(ConversationPublic).
			Include(ConversationMpim).
			ExcludeBotUsers(true).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(filter)
		require.NoError(t, err)
		assert.JSONEq(t, `{"include":["public","mpim"],"exclude_bot_users":true}`, string(raw))
	})

	t.Run("requires at least one field", func(t *testing.T) {
		_, err := NewConversationFilterBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.NoFieldProvided()}, errs.AcrossFields())
	})

	t.Run("rejects an explicitly empty include list", func(t *testing.T) {
		include := []Conversation{}
		_, err := NewConversationFilterBuilder().SetInclude(&include).Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.EmptyArray()}, errs.Field("include"))
		assert.Empty(t, errs.AcrossFields())
	})
}
