package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestButtonBuilder(t *testing.T) {
	t.Run("builds a button", func(t *testing.T) {
		element, err := NewButtonBuilder().
			Text(plainText(t, "Click Me")).
			Value("click_me_123").
			ActionID("button-0").
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(element)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "button",
			"text": {"type": "plain_text", "text": "Click Me"},
			"value": "click_me_123",
			"action_id": "button-0"
		}`, string(raw))
	})

	t.Run("requires text", func(t *testing.T) {
		_, err := NewButtonBuilder().Value("click_me_123").Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("text"))
	})
}

func TestFeedbackButtonBuilder(t *testing.T) {
	t.Run("builds a feedback button without a type tag", func(t *testing.T) {
		button, err := NewFeedbackButtonBuilder().
			Text(plainText(t, "Good")).
			Value("positive_feedback").
			AccessibilityLabel("Mark this response as good").
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(button)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"text": {"type": "plain_text", "text": "Good"},
			"value": "positive_feedback",
			"accessibility_label": "Mark this response as good"
		}`, string(raw))
	})

	t.Run("requires text and value", func(t *testing.T) {
		_, err := NewFeedbackButtonBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.True(t, validation.Includes(errs.Field("text"), validation.Required()))
		assert.True(t, validation.Includes(errs.Field("value"), validation.Required()))
	})
}

func TestFeedbackButtonsBuilder(t *testing.T) {
	t.Run("builds a feedback_buttons element", func(t *testing.T) {
		element, err := NewFeedbackButtonsBuilder().
			ActionID("feedback_buttons_1").
			PositiveButton(feedbackButton(t, "Good", "positive_feedback")).
			NegativeButton(feedbackButton(t, "Bad", "negative_feedback")).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(element)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "feedback_buttons",
			"action_id": "feedback_buttons_1",
			"positive_button": {
				"text": {"type": "plain_text", "text": "Good"},
				"value": "positive_feedback"
			},
			"negative_button": {
				"text": {"type": "plain_text", "text": "Bad"},
				"value": "negative_feedback"
			}
		}`, string(raw))
	})

	t.Run("requires both buttons", func(t *testing.T) {
		_, err := NewFeedbackButtonsBuilder().
			PositiveButton(feedbackButton(t, "Good", "positive_feedback")).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, "FeedbackButtons", errs.Object())
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("negative_button"))
	})
}

func TestIconButtonBuilder(t *testing.T) {
	t.Run("builds an icon_button element", func(t *testing.T) {
		element, err := NewIconButtonBuilder().
			Icon(IconTrash).
			Text(plainText(t, "Delete")).
			ActionID("delete_button_1").
			Value("delete_item").
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(element)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "icon_button",
			"icon": "trash",
			"text": {"type": "plain_text", "text": "Delete"},
			"action_id": "delete_button_1",
			"value": "delete_item"
		}`, string(raw))
	})

	t.Run("requires icon and text", func(t *testing.T) {
		_, err := NewIconButtonBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.True(t, validation.Includes(errs.Field("icon"), validation.Required()))
		assert.True(t, validation.Includes(errs.Field("text"), validation.Required()))
	})

	t.Run("accumulates visible user ids in push order", func(t *testing.T) {
		element, err := NewIconButtonBuilder().
			Icon(IconTrash).
			Text(plainText(t, "Delete")).
			VisibleToUserID("USER0").
			VisibleToUserID("USER1").
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"USER0", "USER1"}, element.VisibleToUserIDs)
	})
}

func TestCheckboxesBuilder(t *testing.T) {
	t.Run("requires options", func(t *testing.T) {
		_, err := NewCheckboxesBuilder().ActionID("group-0").Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("options"))
	})

	t.Run("rejects more than 10 options", func(t *testing.T) {
		builder := NewCheckboxesBuilder()
		for i := 0; i < 11; i++ {
			builder.Option(option(t, "opt", "val"))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(10)}, errs.Field("options"))
	})
}

func TestOverflowMenuBuilder(t *testing.T) {
	t.Run("rejects more than 5 options", func(t *testing.T) {
		builder := NewOverflowMenuBuilder()
		for i := 0; i < 6; i++ {
			builder.Option(option(t, "opt", "val"))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(5)}, errs.Field("options"))
	})
}

func TestDatePickerBuilder(t *testing.T) {
	t.Run("builds a datepicker", func(t *testing.T) {
		element, err := NewDatePickerBuilder().
			ActionID("datepicker-0").
			InitialDate("1990-04-28").
			Placeholder(plainText(t, "Select a date")).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(element)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "datepicker",
			"action_id": "datepicker-0",
			"initial_date": "1990-04-28",
			"placeholder": {"type": "plain_text", "text": "Select a date"}
		}`, string(raw))
	})

	t.Run("rejects an invalid initial date", func(t *testing.T) {
		_, err := NewDatePickerBuilder().InitialDate("2025-02-30").Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.InvalidFormat("YYYY-MM-DD")}, errs.Field("initial_date"))
	})
}

func TestTimePickerBuilder(t *testing.T) {
	t.Run("rejects an invalid initial time", func(t *testing.T) {
		_, err := NewTimePickerBuilder().InitialTime("25:00").Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.InvalidFormat("24-hour format HH:mm")}, errs.Field("initial_time"))
	})

	t.Run("accepts a valid initial time", func(t *testing.T) {
		element, err := NewTimePickerBuilder().
			InitialTime("13:45").
			Timezone("America/Chicago").
			Build()
		require.NoError(t, err)
		require.NotNil(t, element.InitialTime)
		assert.Equal(t, "13:45", *element.InitialTime)
	})
}

func TestPlainTextInputBuilder(t *testing.T) {
	t.Run("rejects out-of-range length bounds", func(t *testing.T) {
		_, err := NewPlainTextInputBuilder().
			MinLength(-1).
			MaxLength(3001).
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MinIntegerValue(0)}, errs.Field("min_length"))
		assert.Equal(t, []validation.Kind{validation.MaxIntegerValue(3000)}, errs.Field("max_length"))
	})
}

func TestNumberInputBuilder(t *testing.T) {
	t.Run("requires is_decimal_allowed", func(t *testing.T) {
		_, err := NewNumberInputBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("is_decimal_allowed"))
	})

	t.Run("builds a number input", func(t *testing.T) {
		element, err := NewNumberInputBuilder().
			IsDecimalAllowed(false).
			ActionID("number-0").
			MinValue("1").
			MaxValue("10").
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(element)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "number_input",
			"is_decimal_allowed": false,
			"action_id": "number-0",
			"min_value": "1",
			"max_value": "10"
		}`, string(raw))
	})
}

func TestWorkflowButtonBuilder(t *testing.T) {
	t.Run("requires text, action_id and workflow", func(t *testing.T) {
		_, err := NewWorkflowButtonBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("text"))
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("action_id"))
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("workflow"))
	})
}
