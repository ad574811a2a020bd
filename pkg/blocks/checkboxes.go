package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Checkboxes is a checkbox group element.
type Checkboxes struct {
	Type           string                          `json:"type"`
	ActionID       *string                         `json:"action_id,omitempty"`
	Options        []composition.Opt               `json:"options"`
	InitialOptions []composition.Opt               `json:"initial_options,omitempty"`
	Confirm        *composition.ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad    *bool                           `json:"focus_on_load,omitempty"`
}

func (e *Checkboxes) sectionAccessory() {}
func (e *Checkboxes) actionsElement()   {}
func (e *Checkboxes) inputElement()     {}

// CheckboxesBuilder builds a Checkboxes element.
type CheckboxesBuilder struct {
	actionID       validation.Value[string]
	options        *[]composition.Opt
	initialOptions *[]composition.Opt
	confirm        *composition.ConfirmationDialog
	focusOnLoad    *bool
}

// NewCheckboxesBuilder constructs a CheckboxesBuilder.
func NewCheckboxesBuilder() *CheckboxesBuilder {
	return &CheckboxesBuilder{actionID: newActionIDCell(nil)}
}

func (b *CheckboxesBuilder) ActionID(id string) *CheckboxesBuilder {
	return b.SetActionID(&id)
}

func (b *CheckboxesBuilder) SetActionID(id *string) *CheckboxesBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// Option appends an option.
func (b *CheckboxesBuilder) Option(option composition.Opt) *CheckboxesBuilder {
	b.options = validation.PushItem(b.options, option)
	return b
}

func (b *CheckboxesBuilder) SetOptions(options *[]composition.Opt) *CheckboxesBuilder {
	b.options = options
	return b
}

// InitialOption appends an initially selected option.
func (b *CheckboxesBuilder) InitialOption(option composition.Opt) *CheckboxesBuilder {
	b.initialOptions = validation.PushItem(b.initialOptions, option)
	return b
}

func (b *CheckboxesBuilder) SetInitialOptions(options *[]composition.Opt) *CheckboxesBuilder {
	b.initialOptions = options
	return b
}

func (b *CheckboxesBuilder) Confirm(confirm composition.ConfirmationDialog) *CheckboxesBuilder {
	return b.SetConfirm(&confirm)
}

func (b *CheckboxesBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *CheckboxesBuilder {
	b.confirm = confirm
	return b
}

func (b *CheckboxesBuilder) FocusOnLoad(focus bool) *CheckboxesBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *CheckboxesBuilder) SetFocusOnLoad(focus *bool) *CheckboxesBuilder {
	b.focusOnLoad = focus
	return b
}

func (b *CheckboxesBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *CheckboxesBuilder) GetOptions() *[]composition.Opt {
	return b.options
}

func (b *CheckboxesBuilder) GetInitialOptions() *[]composition.Opt {
	return b.initialOptions
}

// Build validates the accumulated fields and returns the element.
func (b *CheckboxesBuilder) Build() (*Checkboxes, error) {
	options := validation.Pipe(
		validation.NewValue(b.options),
		validation.Require[[]composition.Opt](),
		validation.MaxItems[composition.Opt](10),
	)

	errs := validation.NewErrors("Checkboxes")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("options", options.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &Checkboxes{
		Type:        "checkboxes",
		ActionID:    b.actionID.Inner(),
		Confirm:     b.confirm,
		FocusOnLoad: b.focusOnLoad,
	}
	if inner := options.Inner(); inner != nil {
		element.Options = *inner
	}
	if b.initialOptions != nil {
		element.InitialOptions = *b.initialOptions
	}
	return element, nil
}
