package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// PlainTextInput is a plain-text input element.
type PlainTextInput struct {
	Type                 string                                   `json:"type"`
	ActionID             *string                                  `json:"action_id,omitempty"`
	InitialValue         *string                                  `json:"initial_value,omitempty"`
	Multiline            *bool                                    `json:"multiline,omitempty"`
	MinLength            *int64                                   `json:"min_length,omitempty"`
	MaxLength            *int64                                   `json:"max_length,omitempty"`
	DispatchActionConfig *composition.DispatchActionConfiguration `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                                    `json:"focus_on_load,omitempty"`
	Placeholder          *composition.Text                        `json:"placeholder,omitempty"`
}

func (e *PlainTextInput) inputElement() {}

// PlainTextInputBuilder builds a PlainTextInput element.
type PlainTextInputBuilder struct {
	actionID             validation.Value[string]
	initialValue         *string
	multiline            *bool
	minLength            validation.Value[int64]
	maxLength            validation.Value[int64]
	dispatchActionConfig *composition.DispatchActionConfiguration
	focusOnLoad          *bool
	placeholder          validation.Value[composition.Text]
}

func newMinLengthCell(length *int64) validation.Value[int64] {
	return validation.Pipe(
		validation.NewValue(length),
		validation.MinInteger(0),
		validation.MaxInteger(3000),
	)
}

func newMaxLengthCell(length *int64) validation.Value[int64] {
	return validation.Pipe(
		validation.NewValue(length),
		validation.MinInteger(1),
		validation.MaxInteger(3000),
	)
}

// NewPlainTextInputBuilder constructs a PlainTextInputBuilder.
func NewPlainTextInputBuilder() *PlainTextInputBuilder {
	return &PlainTextInputBuilder{
		actionID:    newActionIDCell(nil),
		minLength:   newMinLengthCell(nil),
		maxLength:   newMaxLengthCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *PlainTextInputBuilder) ActionID(id string) *PlainTextInputBuilder {
	return b.SetActionID(&id)
}

func (b *PlainTextInputBuilder) SetActionID(id *string) *PlainTextInputBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *PlainTextInputBuilder) InitialValue(value string) *PlainTextInputBuilder {
	return b.SetInitialValue(&value)
}

func (b *PlainTextInputBuilder) SetInitialValue(value *string) *PlainTextInputBuilder {
	b.initialValue = value
	return b
}

func (b *PlainTextInputBuilder) Multiline(multiline bool) *PlainTextInputBuilder {
	return b.SetMultiline(&multiline)
}

func (b *PlainTextInputBuilder) SetMultiline(multiline *bool) *PlainTextInputBuilder {
	b.multiline = multiline
	return b
}

func (b *PlainTextInputBuilder) MinLength(length int64) *PlainTextInputBuilder {
	return b.SetMinLength(&length)
}

func (b *PlainTextInputBuilder) SetMinLength(length *int64) *PlainTextInputBuilder {
	b.minLength = newMinLengthCell(length)
	return b
}

func (b *PlainTextInputBuilder) MaxLength(length int64) *PlainTextInputBuilder {
	return b.SetMaxLength(&length)
}

func (b *PlainTextInputBuilder) SetMaxLength(length *int64) *PlainTextInputBuilder {
	b.maxLength = newMaxLengthCell(length)
	return b
}

func (b *PlainTextInputBuilder) DispatchActionConfig(config composition.DispatchActionConfiguration) *PlainTextInputBuilder {
	return b.SetDispatchActionConfig(&config)
}

func (b *PlainTextInputBuilder) SetDispatchActionConfig(config *composition.DispatchActionConfiguration) *PlainTextInputBuilder {
	b.dispatchActionConfig = config
	return b
}

func (b *PlainTextInputBuilder) FocusOnLoad(focus bool) *PlainTextInputBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *PlainTextInputBuilder) SetFocusOnLoad(focus *bool) *PlainTextInputBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *PlainTextInputBuilder) Placeholder(placeholder composition.Text) *PlainTextInputBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *PlainTextInputBuilder) SetPlaceholder(placeholder *composition.Text) *PlainTextInputBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *PlainTextInputBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *PlainTextInputBuilder) GetMinLength() *int64 {
	return b.minLength.Inner()
}

func (b *PlainTextInputBuilder) GetMaxLength() *int64 {
	return b.maxLength.Inner()
}

func (b *PlainTextInputBuilder) GetPlaceholder() *composition.Text {
	return b.placeholder.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *PlainTextInputBuilder) Build() (*PlainTextInput, error) {
	errs := validation.NewErrors("PlainTextInput")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("min_length", b.minLength.Errors())
	errs.AddField("max_length", b.maxLength.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &PlainTextInput{
		Type:                 "plain_text_input",
		ActionID:             b.actionID.Inner(),
		InitialValue:         b.initialValue,
		Multiline:            b.multiline,
		MinLength:            b.minLength.Inner(),
		MaxLength:            b.maxLength.Inner(),
		DispatchActionConfig: b.dispatchActionConfig,
		FocusOnLoad:          b.focusOnLoad,
		Placeholder:          b.placeholder.Inner(),
	}, nil
}
