package blocks

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestActionsBuilder(t *testing.T) {
	t.Run("builds an actions block", func(t *testing.T) {
		block, err := NewActionsBuilder().
			Element(button(t, "Approve")).
			Element(button(t, "Deny")).
			BlockID("approval").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "actions", block.Type)
		assert.Len(t, block.Elements, 2)
	})

	t.Run("requires elements", func(t *testing.T) {
		_, err := NewActionsBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("elements"))
	})

	t.Run("rejects more than 25 elements", func(t *testing.T) {
		builder := NewActionsBuilder()
		for i := 0; i < 26; i++ {
			builder.Element(button(t, "Go"))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(25)}, errs.Field("elements"))
	})
}

func TestContextBuilder(t *testing.T) {
	t.Run("serializes text elements inline", func(t *testing.T) {
		image, err := NewImageElementBuilder().
			ImageURL("https://example.com/cat.png").
			AltText("a cat").
			Build()
		require.NoError(t, err)

		block, err := NewContextBuilder().
			Element(image).
			Element(ContextText(mrkdwnText(t, "Location: *Dogpatch*"))).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "context",
			"elements": [
				{"type": "image", "image_url": "https://example.com/cat.png", "alt_text": "a cat"},
				{"type": "mrkdwn", "text": "Location: *Dogpatch*"}
			]
		}`, string(raw))
	})

	t.Run("rejects more than 10 elements", func(t *testing.T) {
		builder := NewContextBuilder()
		for i := 0; i < 11; i++ {
			builder.Element(ContextText(plainText(t, "note")))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(10)}, errs.Field("elements"))
	})
}

func TestContextActionsBuilder(t *testing.T) {
	t.Run("builds a context_actions block with feedback buttons", func(t *testing.T) {
		block, err := NewContextActionsBuilder().
			Element(feedbackButtons(t)).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "context_actions",
			"elements": [
				{
					"type": "feedback_buttons",
					"positive_button": {
						"text": {"type": "plain_text", "text": "Good"},
						"value": "positive_feedback"
					},
					"negative_button": {
						"text": {"type": "plain_text", "text": "Bad"},
						"value": "negative_feedback"
					}
				}
			]
		}`, string(raw))
	})

	t.Run("requires elements", func(t *testing.T) {
		_, err := NewContextActionsBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, "ContextActions", errs.Object())
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("elements"))
	})

	t.Run("rejects more than 5 elements", func(t *testing.T) {
		builder := NewContextActionsBuilder()
		for i := 0; i < 6; i++ {
			builder.Element(feedbackButtons(t))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(5)}, errs.Field("elements"))
	})

	t.Run("rejects block_id over 255 characters", func(t *testing.T) {
		_, err := NewContextActionsBuilder().
			Element(feedbackButtons(t)).
			BlockID(strings.Repeat("x", 256)).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(255)}, errs.Field("block_id"))
	})
}

func TestDividerBuilder(t *testing.T) {
	t.Run("builds a divider", func(t *testing.T) {
		block, err := NewDividerBuilder().Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"divider"}`, string(raw))
	})

	t.Run("rejects block_id over 255 characters", func(t *testing.T) {
		_, err := NewDividerBuilder().
			BlockID(strings.Repeat("x", 256)).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(255)}, errs.Field("block_id"))
	})
}

func TestFileBuilder(t *testing.T) {
	t.Run("builds a file block with a remote source", func(t *testing.T) {
		block, err := NewFileBuilder().ExternalID("ABCD1").Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"file","external_id":"ABCD1","source":"remote"}`, string(raw))
	})

	t.Run("requires external_id", func(t *testing.T) {
		_, err := NewFileBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("external_id"))
	})
}

func TestHeaderBuilder(t *testing.T) {
	t.Run("builds a header", func(t *testing.T) {
		block, err := NewHeaderBuilder().
			Text(plainText(t, "Budget Performance")).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "header",
			"text": {"type": "plain_text", "text": "Budget Performance"}
		}`, string(raw))
	})

	t.Run("rejects text over 150 characters", func(t *testing.T) {
		_, err := NewHeaderBuilder().
			Text(plainText(t, strings.Repeat("h", 151))).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(150)}, errs.Field("text"))
	})
}

func TestImageBuilder(t *testing.T) {
	t.Run("builds from an image url", func(t *testing.T) {
		block, err := NewImageBuilder().
			ImageURL("https://example.com/marg.jpg").
			AltText("a margherita pizza").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "image", block.Type)
	})

	t.Run("rejects setting both image_url and slack_file", func(t *testing.T) {
		file, err := composition.NewSlackFileBuilder().ID("F0123456").Build()
		require.NoError(t, err)

		_, err = NewImageBuilder().
			AltText("a cat").
			ImageURL("https://example.com/cat.png").
			SlackFile(*file).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.ExclusiveField("image_url", "slack_file")}, errs.AcrossFields())
	})

	t.Run("requires one of image_url and slack_file", func(t *testing.T) {
		_, err := NewImageBuilder().AltText("a cat").Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.EitherRequired("image_url", "slack_file")}, errs.AcrossFields())
	})
}

func TestInputBuilder(t *testing.T) {
	t.Run("builds an input block", func(t *testing.T) {
		element, err := NewPlainTextInputBuilder().ActionID("plain_input").Build()
		require.NoError(t, err)

		block, err := NewInputBuilder().
			Label(plainText(t, "Notes")).
			Element(element).
			Optional(true).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "input", block.Type)
	})

	t.Run("requires label and element", func(t *testing.T) {
		_, err := NewInputBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("label"))
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("element"))
	})
}

func TestMarkdownBuilder(t *testing.T) {
	t.Run("requires text", func(t *testing.T) {
		_, err := NewMarkdownBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("text"))
	})

	t.Run("rejects text over 12000 characters", func(t *testing.T) {
		_, err := NewMarkdownBuilder().
			Text(strings.Repeat("m", 12001)).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(12000)}, errs.Field("text"))
	})
}

func TestSectionBuilder(t *testing.T) {
	t.Run("builds from text", func(t *testing.T) {
		block, err := NewSectionBuilder().
			Text(mrkdwnText(t, "A message *with formatting*")).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "section",
			"text": {"type": "mrkdwn", "text": "A message *with formatting*"}
		}`, string(raw))
	})

	t.Run("builds from fields", func(t *testing.T) {
		block, err := NewSectionBuilder().
			Field(mrkdwnText(t, "*Priority*")).
			Field(mrkdwnText(t, "High")).
			Build()
		require.NoError(t, err)
		assert.Len(t, block.Fields, 2)
	})

	t.Run("requires one of text and fields", func(t *testing.T) {
		_, err := NewSectionBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.EitherRequired("text", "fields")}, errs.AcrossFields())
	})

	t.Run("rejects a field over 2000 characters", func(t *testing.T) {
		_, err := NewSectionBuilder().
			Field(mrkdwnText(t, strings.Repeat("f", 2001))).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxTextLength(2000)}, errs.Field("fields"))
	})

	t.Run("carries an accessory", func(t *testing.T) {
		block, err := NewSectionBuilder().
			Text(plainText(t, "Pick a date")).
			Accessory(mustDatePicker(t)).
			Build()
		require.NoError(t, err)
		assert.NotNil(t, block.Accessory)
	})
}

func mustDatePicker(t *testing.T) *DatePicker {
	t.Helper()
	picker, err := NewDatePickerBuilder().ActionID("datepicker-0").Build()
	require.NoError(t, err)
	return picker
}

func TestVideoBuilder(t *testing.T) {
	t.Run("requires its mandatory fields", func(t *testing.T) {
		_, err := NewVideoBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		for _, field := range []string{"alt_text", "title", "thumbnail_url", "video_url"} {
			assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field(field))
		}
	})

	t.Run("builds a video block", func(t *testing.T) {
		block, err := NewVideoBuilder().
			AltText("How to use a video block").
			Title(plainText(t, "Use the video block")).
			ThumbnailURL("https://i.ytimg.com/vi/RRxQQxiM7AA/hqdefault.jpg").
			VideoURL("https://www.youtube.com/embed/RRxQQxiM7AA").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "video", block.Type)
	})
}
