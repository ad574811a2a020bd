package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// OverflowMenu is an overflow menu element. Its options may carry urls.
type OverflowMenu struct {
	Type     string                          `json:"type"`
	ActionID *string                         `json:"action_id,omitempty"`
	Options  []composition.Opt               `json:"options"`
	Confirm  *composition.ConfirmationDialog `json:"confirm,omitempty"`
}

func (e *OverflowMenu) sectionAccessory() {}
func (e *OverflowMenu) actionsElement()   {}

// OverflowMenuBuilder builds an OverflowMenu element.
type OverflowMenuBuilder struct {
	actionID validation.Value[string]
	options  *[]composition.Opt
	confirm  *composition.ConfirmationDialog
}

// NewOverflowMenuBuilder constructs an OverflowMenuBuilder.
func NewOverflowMenuBuilder() *OverflowMenuBuilder {
	return &OverflowMenuBuilder{actionID: newActionIDCell(nil)}
}

func (b *OverflowMenuBuilder) ActionID(id string) *OverflowMenuBuilder {
	return b.SetActionID(&id)
}

func (b *OverflowMenuBuilder) SetActionID(id *string) *OverflowMenuBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// Option appends an option.
func (b *OverflowMenuBuilder) Option(option composition.Opt) *OverflowMenuBuilder {
	b.options = validation.PushItem(b.options, option)
	return b
}

func (b *OverflowMenuBuilder) SetOptions(options *[]composition.Opt) *OverflowMenuBuilder {
	b.options = options
	return b
}

func (b *OverflowMenuBuilder) Confirm(confirm composition.ConfirmationDialog) *OverflowMenuBuilder {
	return b.SetConfirm(&confirm)
}

func (b *OverflowMenuBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *OverflowMenuBuilder {
	b.confirm = confirm
	return b
}

func (b *OverflowMenuBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *OverflowMenuBuilder) GetOptions() *[]composition.Opt {
	return b.options
}

// Build validates the accumulated fields and returns the element.
func (b *OverflowMenuBuilder) Build() (*OverflowMenu, error) {
	options := validation.Pipe(
		validation.NewValue(b.options),
		validation.Require[[]composition.Opt](),
		validation.MaxItems[composition.Opt](5),
	)

	errs := validation.NewErrors("OverflowMenu")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("options", options.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &OverflowMenu{
		Type:     "overflow",
		ActionID: b.actionID.Inner(),
		Confirm:  b.confirm,
	}
	if inner := options.Inner(); inner != nil {
		element.Options = *inner
	}
	return element, nil
}
