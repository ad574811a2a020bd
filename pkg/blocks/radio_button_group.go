package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// RadioButtonGroup is a radio button group element.
type RadioButtonGroup struct {
	Type          string                          `json:"type"`
	ActionID      *string                         `json:"action_id,omitempty"`
	Options       []composition.Opt               `json:"options"`
	InitialOption *composition.Opt                `json:"initial_option,omitempty"`
	Confirm       *composition.ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad   *bool                           `json:"focus_on_load,omitempty"`
}

func (e *RadioButtonGroup) sectionAccessory() {}
func (e *RadioButtonGroup) actionsElement()   {}
func (e *RadioButtonGroup) inputElement()     {}

// RadioButtonGroupBuilder builds a RadioButtonGroup element.
type RadioButtonGroupBuilder struct {
	actionID      validation.Value[string]
	options       *[]composition.Opt
	initialOption *composition.Opt
	confirm       *composition.ConfirmationDialog
	focusOnLoad   *bool
}

// NewRadioButtonGroupBuilder constructs a RadioButtonGroupBuilder.
func NewRadioButtonGroupBuilder() *RadioButtonGroupBuilder {
	return &RadioButtonGroupBuilder{actionID: newActionIDCell(nil)}
}

func (b *RadioButtonGroupBuilder) ActionID(id string) *RadioButtonGroupBuilder {
	return b.SetActionID(&id)
}

func (b *RadioButtonGroupBuilder) SetActionID(id *string) *RadioButtonGroupBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// Option appends an option.
func (b *RadioButtonGroupBuilder) Option(option composition.Opt) *RadioButtonGroupBuilder {
	b.options = validation.PushItem(b.options, option)
	return b
}

func (b *RadioButtonGroupBuilder) SetOptions(options *[]composition.Opt) *RadioButtonGroupBuilder {
	b.options = options
	return b
}

func (b *RadioButtonGroupBuilder) InitialOption(option composition.Opt) *RadioButtonGroupBuilder {
	return b.SetInitialOption(&option)
}

func (b *RadioButtonGroupBuilder) SetInitialOption(option *composition.Opt) *RadioButtonGroupBuilder {
	b.initialOption = option
	return b
}

func (b *RadioButtonGroupBuilder) Confirm(confirm composition.ConfirmationDialog) *RadioButtonGroupBuilder {
	return b.SetConfirm(&confirm)
}

func (b *RadioButtonGroupBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *RadioButtonGroupBuilder {
	b.confirm = confirm
	return b
}

func (b *RadioButtonGroupBuilder) FocusOnLoad(focus bool) *RadioButtonGroupBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *RadioButtonGroupBuilder) SetFocusOnLoad(focus *bool) *RadioButtonGroupBuilder {
	b.focusOnLoad = focus
	return b
}

func (b *RadioButtonGroupBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *RadioButtonGroupBuilder) GetOptions() *[]composition.Opt {
	return b.options
}

// Build validates the accumulated fields and returns the element.
func (b *RadioButtonGroupBuilder) Build() (*RadioButtonGroup, error) {
	options := validation.Pipe(
		validation.NewValue(b.options),
		validation.Require[[]composition.Opt](),
		validation.MaxItems[composition.Opt](10),
	)

	errs := validation.NewErrors("RadioButtonGroup")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("options", options.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RadioButtonGroup{
		Type:          "radio_buttons",
		ActionID:      b.actionID.Inner(),
		InitialOption: b.initialOption,
		Confirm:       b.confirm,
		FocusOnLoad:   b.focusOnLoad,
	}
	if inner := options.Inner(); inner != nil {
		element.Options = *inner
	}
	return element, nil
}
