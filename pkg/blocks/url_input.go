package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// URLInput is a URL input element.
type URLInput struct {
	Type                 string                                   `json:"type"`
	ActionID             *string                                  `json:"action_id,omitempty"`
	InitialValue         *string                                  `json:"initial_value,omitempty"`
	DispatchActionConfig *composition.DispatchActionConfiguration `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                                    `json:"focus_on_load,omitempty"`
	Placeholder          *composition.Text                        `json:"placeholder,omitempty"`
}

func (e *URLInput) inputElement() {}

// URLInputBuilder builds a URLInput element.
type URLInputBuilder struct {
	actionID             validation.Value[string]
	initialValue         *string
	dispatchActionConfig *composition.DispatchActionConfiguration
	focusOnLoad          *bool
	placeholder          validation.Value[composition.Text]
}

// NewURLInputBuilder constructs a URLInputBuilder.
func NewURLInputBuilder() *URLInputBuilder {
	return &URLInputBuilder{
		actionID:    newActionIDCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *URLInputBuilder) ActionID(id string) *URLInputBuilder {
	return b.SetActionID(&id)
}

func (b *URLInputBuilder) SetActionID(id *string) *URLInputBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *URLInputBuilder) InitialValue(value string) *URLInputBuilder {
	return b.SetInitialValue(&value)
}

func (b *URLInputBuilder) SetInitialValue(value *string) *URLInputBuilder {
	b.initialValue = value
	return b
}

func (b *URLInputBuilder) DispatchActionConfig(config composition.DispatchActionConfiguration) *URLInputBuilder {
	return b.SetDispatchActionConfig(&config)
}

func (b *URLInputBuilder) SetDispatchActionConfig(config *composition.DispatchActionConfiguration) *URLInputBuilder {
	b.dispatchActionConfig = config
	return b
}

func (b *URLInputBuilder) FocusOnLoad(focus bool) *URLInputBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *URLInputBuilder) SetFocusOnLoad(focus *bool) *URLInputBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *URLInputBuilder) Placeholder(placeholder composition.Text) *URLInputBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *URLInputBuilder) SetPlaceholder(placeholder *composition.Text) *URLInputBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *URLInputBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *URLInputBuilder) GetPlaceholder() *composition.Text {
	return b.placeholder.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *URLInputBuilder) Build() (*URLInput, error) {
	errs := validation.NewErrors("URLInput")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &URLInput{
		Type:                 "url_text_input",
		ActionID:             b.actionID.Inner(),
		InitialValue:         b.initialValue,
		DispatchActionConfig: b.dispatchActionConfig,
		FocusOnLoad:          b.focusOnLoad,
		Placeholder:          b.placeholder.Inner(),
	}, nil
}
