package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// TimePicker is a time picker element. The initial time must be a valid
// 24-hour HH:mm time.
type TimePicker struct {
	Type        string                          `json:"type"`
	ActionID    *string                         `json:"action_id,omitempty"`
	InitialTime *string                         `json:"initial_time,omitempty"`
	Confirm     *composition.ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad *bool                           `json:"focus_on_load,omitempty"`
	Placeholder *composition.Text               `json:"placeholder,omitempty"`
	Timezone    *string                         `json:"timezone,omitempty"`
}

func (e *TimePicker) sectionAccessory() {}
func (e *TimePicker) actionsElement()   {}
func (e *TimePicker) inputElement()     {}

// TimePickerBuilder builds a TimePicker element.
type TimePickerBuilder struct {
	actionID    validation.Value[string]
	initialTime validation.Value[string]
	confirm     *composition.ConfirmationDialog
	focusOnLoad *bool
	placeholder validation.Value[composition.Text]
	timezone    *string
}

func newInitialTimeCell(t *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(t),
		validation.TimeFormat(),
	)
}

// NewTimePickerBuilder constructs a TimePickerBuilder.
func NewTimePickerBuilder() *TimePickerBuilder {
	return &TimePickerBuilder{
		actionID:    newActionIDCell(nil),
		initialTime: newInitialTimeCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *TimePickerBuilder) ActionID(id string) *TimePickerBuilder {
	return b.SetActionID(&id)
}

func (b *TimePickerBuilder) SetActionID(id *string) *TimePickerBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *TimePickerBuilder) InitialTime(t string) *TimePickerBuilder {
	return b.SetInitialTime(&t)
}

func (b *TimePickerBuilder) SetInitialTime(t *string) *TimePickerBuilder {
	b.initialTime = newInitialTimeCell(t)
	return b
}

func (b *TimePickerBuilder) Confirm(confirm composition.ConfirmationDialog) *TimePickerBuilder {
	return b.SetConfirm(&confirm)
}

func (b *TimePickerBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *TimePickerBuilder {
	b.confirm = confirm
	return b
}

func (b *TimePickerBuilder) FocusOnLoad(focus bool) *TimePickerBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *TimePickerBuilder) SetFocusOnLoad(focus *bool) *TimePickerBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *TimePickerBuilder) Placeholder(placeholder composition.Text) *TimePickerBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *TimePickerBuilder) SetPlaceholder(placeholder *composition.Text) *TimePickerBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

// Timezone sets an IANA timezone name, for example "America/Chicago".
func (b *TimePickerBuilder) Timezone(timezone string) *TimePickerBuilder {
	return b.SetTimezone(&timezone)
}

func (b *TimePickerBuilder) SetTimezone(timezone *string) *TimePickerBuilder {
	b.timezone = timezone
	return b
}

func (b *TimePickerBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *TimePickerBuilder) GetInitialTime() *string {
	return b.initialTime.Inner()
}

func (b *TimePickerBuilder) GetTimezone() *string {
	return b.timezone
}

// Build validates the accumulated fields and returns the element.
func (b *TimePickerBuilder) Build() (*TimePicker, error) {
	errs := validation.NewErrors("TimePicker")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("initial_time", b.initialTime.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &TimePicker{
		Type:        "timepicker",
		ActionID:    b.actionID.Inner(),
		InitialTime: b.initialTime.Inner(),
		Confirm:     b.confirm,
		FocusOnLoad: b.focusOnLoad,
		Placeholder: b.placeholder.Inner(),
		Timezone:    b.timezone,
	}, nil
}
