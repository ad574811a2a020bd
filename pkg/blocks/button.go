package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Button is a button element. The text must be a plain_text object.
type Button struct {
	Type               string                          `json:"type"`
	Text               *composition.Text               `json:"text"`
	ActionID           *string                         `json:"action_id,omitempty"`
	URL                *string                         `json:"url,omitempty"`
	Value              *string                         `json:"value,omitempty"`
	Style              *string                         `json:"style,omitempty"`
	Confirm            *composition.ConfirmationDialog `json:"confirm,omitempty"`
	AccessibilityLabel *string                         `json:"accessibility_label,omitempty"`
}

func (e *Button) sectionAccessory() {}
func (e *Button) actionsElement()   {}

// ButtonBuilder builds a Button element.
type ButtonBuilder struct {
	text               validation.Value[composition.Text]
	actionID           validation.Value[string]
	url                validation.Value[string]
	value              validation.Value[string]
	style              *string
	confirm            *composition.ConfirmationDialog
	accessibilityLabel validation.Value[string]
}

func newButtonTextCell(text *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[composition.Text](),
		validation.TexterMaxLength[composition.Text](75),
	)
}

func newButtonURLCell(url *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(url),
		validation.MaxText(3000),
	)
}

func newButtonValueCell(value *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(value),
		validation.MaxText(2000),
	)
}

func newButtonLabelCell(label *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(label),
		validation.MaxText(75),
	)
}

// NewButtonBuilder constructs a ButtonBuilder.
func NewButtonBuilder() *ButtonBuilder {
	return &ButtonBuilder{
		text:               newButtonTextCell(nil),
		actionID:           newActionIDCell(nil),
		url:                newButtonURLCell(nil),
		value:              newButtonValueCell(nil),
		accessibilityLabel: newButtonLabelCell(nil),
	}
}

func (b *ButtonBuilder) Text(text composition.Text) *ButtonBuilder {
	return b.SetText(&text)
}

func (b *ButtonBuilder) SetText(text *composition.Text) *ButtonBuilder {
	b.text = newButtonTextCell(text)
	return b
}

func (b *ButtonBuilder) ActionID(id string) *ButtonBuilder {
	return b.SetActionID(&id)
}

func (b *ButtonBuilder) SetActionID(id *string) *ButtonBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *ButtonBuilder) URL(url string) *ButtonBuilder {
	return b.SetURL(&url)
}

func (b *ButtonBuilder) SetURL(url *string) *ButtonBuilder {
	b.url = newButtonURLCell(url)
	return b
}

func (b *ButtonBuilder) Value(value string) *ButtonBuilder {
	return b.SetValue(&value)
}

func (b *ButtonBuilder) SetValue(value *string) *ButtonBuilder {
	b.value = newButtonValueCell(value)
	return b
}

// Primary sets the style to primary.
func (b *ButtonBuilder) Primary() *ButtonBuilder {
	style := composition.StylePrimary
	b.style = &style
	return b
}

// Danger sets the style to danger.
func (b *ButtonBuilder) Danger() *ButtonBuilder {
	style := composition.StyleDanger
	b.style = &style
	return b
}

func (b *ButtonBuilder) Confirm(confirm composition.ConfirmationDialog) *ButtonBuilder {
	return b.SetConfirm(&confirm)
}

func (b *ButtonBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *ButtonBuilder {
	b.confirm = confirm
	return b
}

func (b *ButtonBuilder) AccessibilityLabel(label string) *ButtonBuilder {
	return b.SetAccessibilityLabel(&label)
}

func (b *ButtonBuilder) SetAccessibilityLabel(label *string) *ButtonBuilder {
	b.accessibilityLabel = newButtonLabelCell(label)
	return b
}

func (b *ButtonBuilder) GetText() *composition.Text {
	return b.text.Inner()
}

func (b *ButtonBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *ButtonBuilder) GetURL() *string {
	return b.url.Inner()
}

func (b *ButtonBuilder) GetValue() *string {
	return b.value.Inner()
}

func (b *ButtonBuilder) GetStyle() *string {
	return b.style
}

func (b *ButtonBuilder) GetConfirm() *composition.ConfirmationDialog {
	return b.confirm
}

func (b *ButtonBuilder) GetAccessibilityLabel() *string {
	return b.accessibilityLabel.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *ButtonBuilder) Build() (*Button, error) {
	errs := validation.NewErrors("Button")
	errs.AddField("text", b.text.Errors())
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("url", b.url.Errors())
	errs.AddField("value", b.value.Errors())
	errs.AddField("accessibility_label", b.accessibilityLabel.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &Button{
		Type:               "button",
		Text:               b.text.Inner(),
		ActionID:           b.actionID.Inner(),
		URL:                b.url.Inner(),
		Value:              b.value.Inner(),
		Style:              b.style,
		Confirm:            b.confirm,
		AccessibilityLabel: b.accessibilityLabel.Inner(),
	}, nil
}
