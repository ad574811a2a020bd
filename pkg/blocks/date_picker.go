package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// DatePicker is a date picker element. The initial date must be a valid
// YYYY-MM-DD date.
type DatePicker struct {
	Type        string                          `json:"type"`
	ActionID    *string                         `json:"action_id,omitempty"`
	InitialDate *string                         `json:"initial_date,omitempty"`
	Confirm     *composition.ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad *bool                           `json:"focus_on_load,omitempty"`
	Placeholder *composition.Text               `json:"placeholder,omitempty"`
}

func (e *DatePicker) sectionAccessory() {}
func (e *DatePicker) actionsElement()   {}
func (e *DatePicker) inputElement()     {}

// DatePickerBuilder builds a DatePicker element.
type DatePickerBuilder struct {
	actionID    validation.Value[string]
	initialDate validation.Value[string]
	confirm     *composition.ConfirmationDialog
	focusOnLoad *bool
	placeholder validation.Value[composition.Text]
}

func newInitialDateCell(date *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(date),
		validation.DateFormat(),
	)
}

// NewDatePickerBuilder constructs a DatePickerBuilder.
func NewDatePickerBuilder() *DatePickerBuilder {
	return &DatePickerBuilder{
		actionID:    newActionIDCell(nil),
		initialDate: newInitialDateCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *DatePickerBuilder) ActionID(id string) *DatePickerBuilder {
	return b.SetActionID(&id)
}

func (b *DatePickerBuilder) SetActionID(id *string) *DatePickerBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *DatePickerBuilder) InitialDate(date string) *DatePickerBuilder {
	return b.SetInitialDate(&date)
}

func (b *DatePickerBuilder) SetInitialDate(date *string) *DatePickerBuilder {
	b.initialDate = newInitialDateCell(date)
	return b
}

func (b *DatePickerBuilder) Confirm(confirm composition.ConfirmationDialog) *DatePickerBuilder {
	return b.SetConfirm(&confirm)
}

func (b *DatePickerBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *DatePickerBuilder {
	b.confirm = confirm
	return b
}

func (b *DatePickerBuilder) FocusOnLoad(focus bool) *DatePickerBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *DatePickerBuilder) SetFocusOnLoad(focus *bool) *DatePickerBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *DatePickerBuilder) Placeholder(placeholder composition.Text) *DatePickerBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *DatePickerBuilder) SetPlaceholder(placeholder *composition.Text) *DatePickerBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *DatePickerBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *DatePickerBuilder) GetInitialDate() *string {
	return b.initialDate.Inner()
}

func (b *DatePickerBuilder) GetPlaceholder() *composition.Text {
	return b.placeholder.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *DatePickerBuilder) Build() (*DatePicker, error) {
	errs := validation.NewErrors("DatePicker")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("initial_date", b.initialDate.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &DatePicker{
		Type:        "datepicker",
		ActionID:    b.actionID.Inner(),
		InitialDate: b.initialDate.Inner(),
		Confirm:     b.confirm,
		FocusOnLoad: b.focusOnLoad,
		Placeholder: b.placeholder.Inner(),
	}, nil
}
