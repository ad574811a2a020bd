package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// NumberInput is a number input element. Min and max values are carried
// as strings so decimal bounds survive serialization exactly.
type NumberInput struct {
	Type                 string                                   `json:"type"`
	IsDecimalAllowed     bool                                     `json:"is_decimal_allowed"`
	ActionID             *string                                  `json:"action_id,omitempty"`
	InitialValue         *string                                  `json:"initial_value,omitempty"`
	MinValue             *string                                  `json:"min_value,omitempty"`
	MaxValue             *string                                  `json:"max_value,omitempty"`
	DispatchActionConfig *composition.DispatchActionConfiguration `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                                    `json:"focus_on_load,omitempty"`
	Placeholder          *composition.Text                        `json:"placeholder,omitempty"`
}

func (e *NumberInput) inputElement() {}

// NumberInputBuilder builds a NumberInput element.
type NumberInputBuilder struct {
	isDecimalAllowed     validation.Value[bool]
	actionID             validation.Value[string]
	initialValue         *string
	minValue             *string
	maxValue             *string
	dispatchActionConfig *composition.DispatchActionConfiguration
	focusOnLoad          *bool
	placeholder          validation.Value[composition.Text]
}

func newDecimalAllowedCell(allowed *bool) validation.Value[bool] {
	return validation.Pipe(
		validation.NewValue(allowed),
		validation.Require[bool](),
	)
}

// NewNumberInputBuilder constructs a NumberInputBuilder.
func NewNumberInputBuilder() *NumberInputBuilder {
	return &NumberInputBuilder{
		isDecimalAllowed: newDecimalAllowedCell(nil),
		actionID:         newActionIDCell(nil),
		placeholder:      newPlaceholderCell(nil),
	}
}

func (b *NumberInputBuilder) IsDecimalAllowed(allowed bool) *NumberInputBuilder {
	return b.SetIsDecimalAllowed(&allowed)
}

func (b *NumberInputBuilder) SetIsDecimalAllowed(allowed *bool) *NumberInputBuilder {
	b.isDecimalAllowed = newDecimalAllowedCell(allowed)
	return b
}

func (b *NumberInputBuilder) ActionID(id string) *NumberInputBuilder {
	return b.SetActionID(&id)
}

func (b *NumberInputBuilder) SetActionID(id *string) *NumberInputBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *NumberInputBuilder) InitialValue(value string) *NumberInputBuilder {
	return b.SetInitialValue(&value)
}

func (b *NumberInputBuilder) SetInitialValue(value *string) *NumberInputBuilder {
	b.initialValue = value
	return b
}

func (b *NumberInputBuilder) MinValue(value string) *NumberInputBuilder {
	return b.SetMinValue(&value)
}

func (b *NumberInputBuilder) SetMinValue(value *string) *NumberInputBuilder {
	b.minValue = value
	return b
}

func (b *NumberInputBuilder) MaxValue(value string) *NumberInputBuilder {
	return b.SetMaxValue(&value)
}

func (b *NumberInputBuilder) SetMaxValue(value *string) *NumberInputBuilder {
	b.maxValue = value
	return b
}

func (b *NumberInputBuilder) DispatchActionConfig(config composition.DispatchActionConfiguration) *NumberInputBuilder {
	return b.SetDispatchActionConfig(&config)
}

func (b *NumberInputBuilder) SetDispatchActionConfig(config *composition.DispatchActionConfiguration) *NumberInputBuilder {
	b.dispatchActionConfig = config
	return b
}

func (b *NumberInputBuilder) FocusOnLoad(focus bool) *NumberInputBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *NumberInputBuilder) SetFocusOnLoad(focus *bool) *NumberInputBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *NumberInputBuilder) Placeholder(placeholder composition.Text) *NumberInputBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *NumberInputBuilder) SetPlaceholder(placeholder *composition.Text) *NumberInputBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *NumberInputBuilder) GetIsDecimalAllowed() *bool {
	return b.isDecimalAllowed.Inner()
}

func (b *NumberInputBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *NumberInputBuilder) GetPlaceholder() *composition.Text {
	return b.placeholder.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *NumberInputBuilder) Build() (*NumberInput, error) {
	errs := validation.NewErrors("NumberInput")
	errs.AddField("is_decimal_allowed", b.isDecimalAllowed.Errors())
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &NumberInput{
		Type:                 "number_input",
		ActionID:             b.actionID.Inner(),
		InitialValue:         b.initialValue,
		MinValue:             b.minValue,
		MaxValue:             b.maxValue,
		DispatchActionConfig: b.dispatchActionConfig,
		FocusOnLoad:          b.focusOnLoad,
		Placeholder:          b.placeholder.Inner(),
	}
	if allowed := b.isDecimalAllowed.Inner(); allowed != nil {
		element.IsDecimalAllowed = *allowed
	}
	return element, nil
}
