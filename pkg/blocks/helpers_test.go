package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/composition"
)

func plainText(t *testing.T, text string) composition.Text {
	t.Helper()
	built, err := composition.NewPlainTextBuilder().Text(text).Build()
	require.NoError(t, err)
	return *built
}

func mrkdwnText(t *testing.T, text string) composition.Text {
	t.Helper()
	built, err := composition.NewMrkdwnBuilder().Text(text).Build()
	require.NoError(t, err)
	return *built
}

func option(t *testing.T, text, value string) composition.Opt {
	t.Helper()
	built, err := composition.NewOptBuilder().
		Text(plainText(t, text)).
		Value(value).
		Build()
	require.NoError(t, err)
	return *built
}

func button(t *testing.T, text string) *Button {
	t.Helper()
	built, err := NewButtonBuilder().Text(plainText(t, text)).Build()
	require.NoError(t, err)
	return built
}

func feedbackButton(t *testing.T, text, value string) FeedbackButton {
	t.Helper()
	built, err := NewFeedbackButtonBuilder().
		Text(plainText(t, text)).
		Value(value).
		Build()
	require.NoError(t, err)
	return *built
}

func feedbackButtons(t *testing.T) *FeedbackButtons {
	t.Helper()
	built, err := NewFeedbackButtonsBuilder().
		PositiveButton(feedbackButton(t, "Good", "positive_feedback")).
		NegativeButton(feedbackButton(t, "Bad", "negative_feedback")).
		Build()
	require.NoError(t, err)
	return built
}
