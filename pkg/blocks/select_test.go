package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func optionGroup(t *testing.T, label string) composition.OptGroup {
	t.Helper()
	group, err := composition.NewOptGroupBuilder().
		Label(plainText(t, label)).
		Option(option(t, "opt", "val")).
		Build()
	require.NoError(t, err)
	return *group
}

func TestSelectMenuStaticOptionsBuilder(t *testing.T) {
	t.Run("builds from options", func(t *testing.T) {
		element, err := NewSelectMenuStaticOptionsBuilder().
			ActionID("select-0").
			Option(option(t, "Maru", "maru")).
			Placeholder(plainText(t, "Select a cat")).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "static_select", element.Type)
		assert.Len(t, element.Options, 1)
		assert.Nil(t, element.OptionGroups)
	})

	t.Run("builds from option groups", func(t *testing.T) {
		element, err := NewSelectMenuStaticOptionsBuilder().
			OptionGroup(optionGroup(t, "Cats")).
			Build()
		require.NoError(t, err)
		assert.Len(t, element.OptionGroups, 1)
	})

	t.Run("rejects setting both options and option_groups", func(t *testing.T) {
		_, err := NewSelectMenuStaticOptionsBuilder().
			Option(option(t, "Maru", "maru")).
			OptionGroup(optionGroup(t, "Cats")).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.ExclusiveField("options", "option_groups")}, errs.AcrossFields())
	})

	t.Run("requires one of options and option_groups", func(t *testing.T) {
		_, err := NewSelectMenuStaticOptionsBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.EitherRequired("options", "option_groups")}, errs.AcrossFields())
	})
}

func TestMultiSelectMenuStaticOptionsBuilder(t *testing.T) {
	t.Run("rejects max_selected_items below 1", func(t *testing.T) {
		_, err := NewMultiSelectMenuStaticOptionsBuilder().
			Option(option(t, "Maru", "maru")).
			MaxSelectedItems(0).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MinIntegerValue(1)}, errs.Field("max_selected_items"))
	})

	t.Run("shares the pairing rule with the single select", func(t *testing.T) {
		_, err := NewMultiSelectMenuStaticOptionsBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.EitherRequired("options", "option_groups")}, errs.AcrossFields())
	})
}

func TestSelectMenuConversationsBuilder(t *testing.T) {
	t.Run("carries a conversation filter", func(t *testing.T) {
		filter, err := composition.NewConversationFilterBuilder().
			Include(composition.ConversationPublic).
			Build()
		require.NoError(t, err)

		element, err := NewSelectMenuConversationsBuilder().
			ActionID("conversations-0").
			Filter(*filter).
			ResponseURLEnabled(true).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(element)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "conversations_select",
			"action_id": "conversations-0",
			"response_url_enabled": true,
			"filter": {"include": ["public"]}
		}`, string(raw))
	})
}

func TestMultiSelectMenuUsersBuilder(t *testing.T) {
	t.Run("builds with initial users", func(t *testing.T) {
		element, err := NewMultiSelectMenuUsersBuilder().
			ActionID("users-0").
			InitialUser("U012A3CDE").
			InitialUser("U053B4EFG").
			MaxSelectedItems(3).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "multi_users_select", element.Type)
		assert.Equal(t, []string{"U012A3CDE", "U053B4EFG"}, element.InitialUsers)
	})
}

func TestSelectMenuExternalsBuilder(t *testing.T) {
	t.Run("builds with a min query length", func(t *testing.T) {
		element, err := NewSelectMenuExternalsBuilder().
			ActionID("external-0").
			MinQueryLength(3).
			Build()
		require.NoError(t, err)
		require.NotNil(t, element.MinQueryLength)
		assert.Equal(t, int64(3), *element.MinQueryLength)
	})
}
