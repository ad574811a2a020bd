package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func richTextSection(t *testing.T, elements ...RichTextElement) RichTextSection {
	t.Helper()
	builder := NewRichTextSectionBuilder()
	for _, element := range elements {
		builder.Element(element)
	}
	section, err := builder.Build()
	require.NoError(t, err)
	return *section
}

func TestRichTextBuilder(t *testing.T) {
	t.Run("builds a rich_text block", func(t *testing.T) {
		text, err := NewRichTextTextBuilder().Text("Hello there, ").Build()
		require.NoError(t, err)
		bold, err := NewRichTextTextBuilder().
			Text("friend!").
			Style(RichTextStyle{Bold: boolPtr(true)}).
			Build()
		require.NoError(t, err)

		section := richTextSection(t, text, bold)
		block, err := NewRichTextBuilder().Element(&section).Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "rich_text",
			"elements": [
				{
					"type": "rich_text_section",
					"elements": [
						{"type": "text", "text": "Hello there, "},
						{"type": "text", "text": "friend!", "style": {"bold": true}}
					]
				}
			]
		}`, string(raw))
	})

	t.Run("requires elements", func(t *testing.T) {
		_, err := NewRichTextBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("elements"))
	})

	t.Run("serializes explicitly empty elements as an empty array", func(t *testing.T) {
		block, err := NewRichTextBuilder().
			SetElements(&[]RichTextObject{}).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"rich_text","elements":[]}`, string(raw))
	})
}

func TestRichTextListBuilder(t *testing.T) {
	t.Run("requires style and elements", func(t *testing.T) {
		_, err := NewRichTextListBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("style"))
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("elements"))
	})

	t.Run("builds a bullet list", func(t *testing.T) {
		item, err := NewRichTextTextBuilder().Text("first").Build()
		require.NoError(t, err)

		list, err := NewRichTextListBuilder().
			Style(ListStyleBullet).
			Element(richTextSection(t, item)).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "rich_text_list", list.Type)
		assert.Equal(t, ListStyleBullet, list.Style)
	})
}

func TestRichTextLeafBuilders(t *testing.T) {
	t.Run("emoji requires a name", func(t *testing.T) {
		_, err := NewRichTextEmojiBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("name"))
	})

	t.Run("link serializes its fields", func(t *testing.T) {
		link, err := NewRichTextLinkBuilder().
			URL("https://example.com").
			Text("example").
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(link)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"link","url":"https://example.com","text":"example"}`, string(raw))
	})

	t.Run("date requires timestamp and format", func(t *testing.T) {
		_, err := NewRichTextDateBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("timestamp"))
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("format"))
	})

	t.Run("broadcast and color serialize directly", func(t *testing.T) {
		raw, err := json.Marshal(NewRichTextBroadcast(BroadcastHere))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"broadcast","range":"here"}`, string(raw))

		raw, err = json.Marshal(NewRichTextColor("#F405B3"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"color","value":"#F405B3"}`, string(raw))
	})
}

func boolPtr(b bool) *bool {
	return &b
}
