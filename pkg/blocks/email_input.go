package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// EmailInput is an email input element.
type EmailInput struct {
	Type                 string                                   `json:"type"`
	ActionID             *string                                  `json:"action_id,omitempty"`
	InitialValue         *string                                  `json:"initial_value,omitempty"`
	DispatchActionConfig *composition.DispatchActionConfiguration `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                                    `json:"focus_on_load,omitempty"`
	Placeholder          *composition.Text                        `json:"placeholder,omitempty"`
}

func (e *EmailInput) inputElement() {}

// EmailInputBuilder builds an EmailInput element.
type EmailInputBuilder struct {
	actionID             validation.Value[string]
	initialValue         *string
	dispatchActionConfig *composition.DispatchActionConfiguration
	focusOnLoad          *bool
	placeholder          validation.Value[composition.Text]
}

// NewEmailInputBuilder constructs an EmailInputBuilder.
func NewEmailInputBuilder() *EmailInputBuilder {
	return &EmailInputBuilder{
		actionID:    newActionIDCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *EmailInputBuilder) ActionID(id string) *EmailInputBuilder {
	return b.SetActionID(&id)
}

func (b *EmailInputBuilder) SetActionID(id *string) *EmailInputBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *EmailInputBuilder) InitialValue(value string) *EmailInputBuilder {
	return b.SetInitialValue(&value)
}

func (b *EmailInputBuilder) SetInitialValue(value *string) *EmailInputBuilder {
	b.initialValue = value
	return b
}

func (b *EmailInputBuilder) DispatchActionConfig(config composition.DispatchActionConfiguration) *EmailInputBuilder {
	return b.SetDispatchActionConfig(&config)
}

func (b *EmailInputBuilder) SetDispatchActionConfig(config *composition.DispatchActionConfiguration) *EmailInputBuilder {
	b.dispatchActionConfig = config
	return b
}

func (b *EmailInputBuilder) FocusOnLoad(focus bool) *EmailInputBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *EmailInputBuilder) SetFocusOnLoad(focus *bool) *EmailInputBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *EmailInputBuilder) Placeholder(placeholder composition.Text) *EmailInputBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *EmailInputBuilder) SetPlaceholder(placeholder *composition.Text) *EmailInputBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *EmailInputBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *EmailInputBuilder) GetPlaceholder() *composition.Text {
	return b.placeholder.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *EmailInputBuilder) Build() (*EmailInput, error) {
	errs := validation.NewErrors("EmailInput")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &EmailInput{
		Type:                 "email_text_input",
		ActionID:             b.actionID.Inner(),
		InitialValue:         b.initialValue,
		DispatchActionConfig: b.dispatchActionConfig,
		FocusOnLoad:          b.focusOnLoad,
		Placeholder:          b.placeholder.Inner(),
	}, nil
}
