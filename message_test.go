package blockkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/blocks"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func sectionBlock(t *testing.T, text string) *blocks.Section {
	t.Helper()
	textObject, err := Mrkdwn("%s", text)
	require.NoError(t, err)
	built, err := blocks.NewSectionBuilder().Text(*textObject).Build()
	require.NoError(t, err)
	return built
}

func TestMessageBuilder(t *testing.T) {
	t.Run("builds a message payload", func(t *testing.T) {
		message, err := NewMessageBuilder().
			Text("Danny Torrence left a 1 star review").
			Block(sectionBlock(t, "Danny Torrence left the following review:")).
			ThreadTS("1625763652.017809").
			ResponseType(ResponseEphemeral).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(message)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"text": "Danny Torrence left a 1 star review",
			"blocks": [
				{"type": "section", "text": {"type": "mrkdwn", "text": "Danny Torrence left the following review:"}}
			],
			"thread_ts": "1625763652.017809",
			"response_type": "ephemeral"
		}`, string(raw))
	})

	t.Run("omits every unset field", func(t *testing.T) {
		message, err := NewMessageBuilder().Build()
		require.NoError(t, err)

		raw, err := json.Marshal(message)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(raw))
	})

	t.Run("rejects more than 50 blocks", func(t *testing.T) {
		builder := NewMessageBuilder()
		for i := 0; i < 51; i++ {
			builder.Block(sectionBlock(t, "filler"))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, "Message", errs.Object())
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(50)}, errs.Field("blocks"))
	})

	t.Run("carries attachments with their own blocks", func(t *testing.T) {
		attachment, err := NewAttachmentBuilder().
			Color("#36a64f").
			Block(sectionBlock(t, "All systems operational.")).
			Build()
		require.NoError(t, err)

		message, err := NewMessageBuilder().
			Attachment(*attachment).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(message)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"attachments": [
				{
					"color": "#36a64f",
					"blocks": [
						{"type": "section", "text": {"type": "mrkdwn", "text": "All systems operational."}}
					]
				}
			]
		}`, string(raw))
	})
}

func TestTextHelpers(t *testing.T) {
	t.Run("PlainText formats its arguments", func(t *testing.T) {
		text, err := PlainText("Hello, %s!", "World")
		require.NoError(t, err)
		assert.Equal(t, "plain_text", text.Type)
		assert.Equal(t, "Hello, World!", text.TextValue())
	})

	t.Run("Mrkdwn formats its arguments", func(t *testing.T) {
		text, err := Mrkdwn("*%d* new messages", 3)
		require.NoError(t, err)
		assert.Equal(t, "mrkdwn", text.Type)
		assert.Equal(t, "*3* new messages", text.TextValue())
	})

	t.Run("propagates validation failures", func(t *testing.T) {
		_, err := PlainText("%s", string(make([]byte, 3001)))
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(3000)}, errs.Field("text"))
	})
}
