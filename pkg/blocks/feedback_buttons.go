package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// FeedbackButton is one of the two buttons of a feedback_buttons element.
// It carries no type discriminator of its own.
type FeedbackButton struct {
	Text               *composition.Text `json:"text"`
	Value              *string           `json:"value"`
	AccessibilityLabel *string           `json:"accessibility_label,omitempty"`
}

// FeedbackButtonBuilder builds a FeedbackButton.
type FeedbackButtonBuilder struct {
	text               validation.Value[composition.Text]
	value              validation.Value[string]
	accessibilityLabel validation.Value[string]
}

func newFeedbackButtonTextCell(text *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[composition.Text](),
		validation.TexterMaxLength[composition.Text](75),
	)
}

func newFeedbackButtonValueCell(value *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(value),
		validation.Require[string](),
		validation.MaxText(2000),
	)
}

// NewFeedbackButtonBuilder constructs a FeedbackButtonBuilder.
func NewFeedbackButtonBuilder() *FeedbackButtonBuilder {
	return &FeedbackButtonBuilder{
		text:               newFeedbackButtonTextCell(nil),
		value:              newFeedbackButtonValueCell(nil),
		accessibilityLabel: newButtonLabelCell(nil),
	}
}

func (b *FeedbackButtonBuilder) Text(text composition.Text) *FeedbackButtonBuilder {
	return b.SetText(&text)
}

func (b *FeedbackButtonBuilder) SetText(text *composition.Text) *FeedbackButtonBuilder {
	b.text = newFeedbackButtonTextCell(text)
	return b
}

func (b *FeedbackButtonBuilder) Value(value string) *FeedbackButtonBuilder {
	return b.SetValue(&value)
}

func (b *FeedbackButtonBuilder) SetValue(value *string) *FeedbackButtonBuilder {
	b.value = newFeedbackButtonValueCell(value)
	return b
}

func (b *FeedbackButtonBuilder) AccessibilityLabel(label string) *FeedbackButtonBuilder {
	return b.SetAccessibilityLabel(&label)
}

func (b *FeedbackButtonBuilder) SetAccessibilityLabel(label *string) *FeedbackButtonBuilder {
	b.accessibilityLabel = newButtonLabelCell(label)
	return b
}

func (b *FeedbackButtonBuilder) GetText() *composition.Text {
	return b.text.Inner()
}

func (b *FeedbackButtonBuilder) GetValue() *string {
	return b.value.Inner()
}

func (b *FeedbackButtonBuilder) GetAccessibilityLabel() *string {
	return b.accessibilityLabel.Inner()
}

// Build validates the accumulated fields and returns the button.
func (b *FeedbackButtonBuilder) Build() (*FeedbackButton, error) {
	errs := validation.NewErrors("FeedbackButton")
	errs.AddField("text", b.text.Errors())
	errs.AddField("value", b.value.Errors())
	errs.AddField("accessibility_label", b.accessibilityLabel.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &FeedbackButton{
		Text:               b.text.Inner(),
		Value:              b.value.Inner(),
		AccessibilityLabel: b.accessibilityLabel.Inner(),
	}, nil
}

// FeedbackButtons is a feedback_buttons element carrying a positive and a
// negative feedback button.
type FeedbackButtons struct {
	Type           string          `json:"type"`
	ActionID       *string         `json:"action_id,omitempty"`
	PositiveButton *FeedbackButton `json:"positive_button"`
	NegativeButton *FeedbackButton `json:"negative_button"`
}

func (e *FeedbackButtons) contextActionsElement() {}

// FeedbackButtonsBuilder builds a FeedbackButtons element.
type FeedbackButtonsBuilder struct {
	actionID       validation.Value[string]
	positiveButton validation.Value[FeedbackButton]
	negativeButton validation.Value[FeedbackButton]
}

func newFeedbackButtonCell(button *FeedbackButton) validation.Value[FeedbackButton] {
	return validation.Pipe(
		validation.NewValue(button),
		validation.Require[FeedbackButton](),
	)
}

// NewFeedbackButtonsBuilder constructs a FeedbackButtonsBuilder.
func NewFeedbackButtonsBuilder() *FeedbackButtonsBuilder {
	return &FeedbackButtonsBuilder{
		actionID:       newActionIDCell(nil),
		positiveButton: newFeedbackButtonCell(nil),
		negativeButton: newFeedbackButtonCell(nil),
	}
}

func (b *FeedbackButtonsBuilder) ActionID(id string) *FeedbackButtonsBuilder {
	return b.SetActionID(&id)
}

func (b *FeedbackButtonsBuilder) SetActionID(id *string) *FeedbackButtonsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *FeedbackButtonsBuilder) PositiveButton(button FeedbackButton) *FeedbackButtonsBuilder {
	return b.SetPositiveButton(&button)
}

func (b *FeedbackButtonsBuilder) SetPositiveButton(button *FeedbackButton) *FeedbackButtonsBuilder {
	b.positiveButton = newFeedbackButtonCell(button)
	return b
}

func (b *FeedbackButtonsBuilder) NegativeButton(button FeedbackButton) *FeedbackButtonsBuilder {
	return b.SetNegativeButton(&button)
}

func (b *FeedbackButtonsBuilder) SetNegativeButton(button *FeedbackButton) *FeedbackButtonsBuilder {
	b.negativeButton = newFeedbackButtonCell(button)
	return b
}

func (b *FeedbackButtonsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *FeedbackButtonsBuilder) GetPositiveButton() *FeedbackButton {
	return b.positiveButton.Inner()
}

func (b *FeedbackButtonsBuilder) GetNegativeButton() *FeedbackButton {
	return b.negativeButton.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *FeedbackButtonsBuilder) Build() (*FeedbackButtons, error) {
	errs := validation.NewErrors("FeedbackButtons")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("positive_button", b.positiveButton.Errors())
	errs.AddField("negative_button", b.negativeButton.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &FeedbackButtons{
		Type:           "feedback_buttons",
		ActionID:       b.actionID.Inner(),
		PositiveButton: b.positiveButton.Inner(),
		NegativeButton: b.negativeButton.Inner(),
	}, nil
}
